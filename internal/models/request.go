package models

import "time"

const (
	TripOneWay    = "oneWay"
	TripRoundTrip = "roundTrip"
)

const (
	CabinEconomy        = "economy"
	CabinPremiumEconomy = "premium_economy"
	CabinBusiness       = "business"
	CabinFirst          = "first"
)

// DateLayout is the calendar-day precision used everywhere a date crosses a
// request boundary.
const DateLayout = "2006-01-02"

// PlaceRef is the origin/destination reference a search form carries: the
// identifier pair plus the display label the user picked.
type PlaceRef struct {
	SkyID    string `json:"skyId"`
	EntityID string `json:"entityId"`
	Label    string `json:"label"`
}

// SearchCriteria is a validated flight-search form. Dates are calendar-day
// strings in DateLayout.
type SearchCriteria struct {
	TripType      string   `json:"tripType"`
	CabinClass    string   `json:"cabinClass"`
	Origin        PlaceRef `json:"origin"`
	Destination   PlaceRef `json:"destination"`
	DepartureDate string   `json:"departureDate"`
	ReturnDate    string   `json:"returnDate,omitempty"`
	Adults        int      `json:"adults"`
}

// ValidationError is a field-level constraint violation raised before any
// network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Validate enforces the dispatch invariants: well-formed place identifiers on
// both ends, a parseable departure date, 1-9 passengers, and for round trips
// a return date no earlier than departure.
func (c *SearchCriteria) Validate() error {
	if c.TripType == "" {
		c.TripType = TripOneWay
	}
	if c.TripType != TripOneWay && c.TripType != TripRoundTrip {
		return invalid("tripType", "must be oneWay or roundTrip")
	}
	if c.CabinClass == "" {
		c.CabinClass = CabinEconomy
	}
	if err := validatePlace("origin", c.Origin); err != nil {
		return err
	}
	if err := validatePlace("destination", c.Destination); err != nil {
		return err
	}
	if c.Adults == 0 {
		c.Adults = 1
	}
	if c.Adults < 1 || c.Adults > 9 {
		return invalid("adults", "passenger count must be between 1 and 9")
	}

	dep, err := time.Parse(DateLayout, c.DepartureDate)
	if err != nil {
		return invalid("departureDate", "must be a YYYY-MM-DD date")
	}

	if c.TripType == TripRoundTrip {
		if c.ReturnDate == "" {
			return invalid("returnDate", "Return date is required for round trips")
		}
		ret, err := time.Parse(DateLayout, c.ReturnDate)
		if err != nil {
			return invalid("returnDate", "must be a YYYY-MM-DD date")
		}
		if ret.Before(dep) {
			return invalid("returnDate", "Return date must be after departure date")
		}
	}

	return nil
}

func validatePlace(field string, p PlaceRef) error {
	if len(p.SkyID) < 3 {
		return invalid(field, "skyId must be at least 3 characters")
	}
	if len(p.EntityID) < 8 {
		return invalid(field, "entityId must be at least 8 characters")
	}
	return nil
}

// DetailLeg identifies one leg of the itinerary a detail lookup refers to.
// The upstream expects these serialized as a JSON array even for one-way
// trips.
type DetailLeg struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}
