package skyapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rdyansyah/skygate/internal/models"
	"github.com/rdyansyah/skygate/pkg/currency"
)

type searchData struct {
	Context     searchContext  `json:"context"`
	Itineraries []rawItinerary `json:"itineraries"`
}

type searchContext struct {
	Status       string `json:"status"`
	SessionID    string `json:"sessionId"`
	TotalResults int    `json:"totalResults"`
}

type rawItinerary struct {
	ID    string   `json:"id"`
	Price rawPrice `json:"price"`
	Legs  []rawLeg `json:"legs"`
}

type rawPrice struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

type rawLeg struct {
	ID                string       `json:"id"`
	Origin            rawLegPlace  `json:"origin"`
	Destination       rawLegPlace  `json:"destination"`
	DurationInMinutes int          `json:"durationInMinutes"`
	StopCount         int          `json:"stopCount"`
	Departure         string       `json:"departure"`
	Arrival           string       `json:"arrival"`
	TimeDeltaInDays   int          `json:"timeDeltaInDays"`
	Carriers          rawCarriers  `json:"carriers"`
	Segments          []rawSegment `json:"segments"`
}

type rawLegPlace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayCode string `json:"displayCode"`
	City        string `json:"city"`
}

type rawCarriers struct {
	Marketing []rawCarrier `json:"marketing"`
}

type rawCarrier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	AlternateID string `json:"alternateId"`
	DisplayCode string `json:"displayCode"`
	LogoURL     string `json:"logoUrl"`
}

type rawSegment struct {
	ID                string          `json:"id"`
	Origin            rawSegmentPlace `json:"origin"`
	Destination       rawSegmentPlace `json:"destination"`
	Departure         string          `json:"departure"`
	Arrival           string          `json:"arrival"`
	DurationInMinutes int             `json:"durationInMinutes"`
	FlightNumber      string          `json:"flightNumber"`
	MarketingCarrier  rawCarrier      `json:"marketingCarrier"`
	OperatingCarrier  rawCarrier      `json:"operatingCarrier"`
}

type rawSegmentPlace struct {
	FlightPlaceID string           `json:"flightPlaceId"`
	DisplayCode   string           `json:"displayCode"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Parent        *rawSegmentPlace `json:"parent"`
}

// SearchFlights validates criteria, dispatches the search, and returns the
// normalized itineraries together with the session identifier the upstream
// requires for follow-up detail calls. A status:false answer surfaces as a
// NotFoundError; a status:true answer with zero itineraries is a legal empty
// result.
func (c *Client) SearchFlights(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	var raw searchData
	if err := c.get(ctx, pathSearchFlights, searchParams(criteria), &raw); err != nil {
		return nil, err
	}

	itineraries := make([]models.Itinerary, 0, len(raw.Itineraries))
	for _, it := range raw.Itineraries {
		itineraries = append(itineraries, normalizeItinerary(it))
	}

	return &models.SearchResult{
		Session:     models.SearchSession(raw.Context.SessionID),
		Itineraries: itineraries,
	}, nil
}

// searchParams serializes validated criteria into the upstream query shape.
// The sort, currency, market, and country parameters are fixed configuration,
// not caller input. returnDate is only present for round trips.
func searchParams(criteria models.SearchCriteria) url.Values {
	params := url.Values{
		"tripType":            {criteria.TripType},
		"originSkyId":         {criteria.Origin.SkyID},
		"originEntityId":      {criteria.Origin.EntityID},
		"originLabel":         {criteria.Origin.Label},
		"destinationSkyId":    {criteria.Destination.SkyID},
		"destinationEntityId": {criteria.Destination.EntityID},
		"destinationLabel":    {criteria.Destination.Label},
		"cabinClass":          {criteria.CabinClass},
		"adults":              {strconv.Itoa(criteria.Adults)},
		"date":                {criteria.DepartureDate},
		"sortBy":              {defaultSort},
		"currency":            {defaultCurrency},
		"market":              {defaultMarket},
		"countryCode":         {defaultCountry},
	}
	if criteria.TripType == models.TripRoundTrip {
		params.Set("returnDate", criteria.ReturnDate)
	}
	return params
}

func normalizeItinerary(it rawItinerary) models.Itinerary {
	legs := make([]models.Leg, 0, len(it.Legs))
	for _, l := range it.Legs {
		legs = append(legs, normalizeLeg(l))
	}
	return models.Itinerary{
		ID:    it.ID,
		Price: normalizePrice(it.Price),
		Legs:  legs,
	}
}

func normalizePrice(p rawPrice) models.Price {
	formatted := p.Formatted
	if formatted == "" {
		formatted = currency.FormatUSD(p.Raw)
	}
	return models.Price{Raw: p.Raw, Formatted: formatted}
}

func normalizeLeg(l rawLeg) models.Leg {
	segments := make([]models.Segment, 0, len(l.Segments))
	for _, s := range l.Segments {
		segments = append(segments, normalizeSegment(s))
	}
	return models.Leg{
		ID:                l.ID,
		Origin:            normalizeLegPlace(l.Origin),
		Destination:       normalizeLegPlace(l.Destination),
		DurationInMinutes: l.DurationInMinutes,
		StopCount:         l.StopCount,
		Departure:         parseFlightTime(l.Departure),
		Arrival:           parseFlightTime(l.Arrival),
		TimeDeltaInDays:   l.TimeDeltaInDays,
		MarketingCarriers: uniqueCarriers(l.Carriers.Marketing),
		Segments:          segments,
	}
}

func normalizeLegPlace(p rawLegPlace) models.PlaceSummary {
	return models.PlaceSummary{
		ID:          p.ID,
		Name:        p.Name,
		DisplayCode: p.DisplayCode,
		City:        p.City,
	}
}

func normalizeSegment(s rawSegment) models.Segment {
	return models.Segment{
		ID:                s.ID,
		Origin:            normalizeSegmentPlace(s.Origin),
		Destination:       normalizeSegmentPlace(s.Destination),
		Departure:         parseFlightTime(s.Departure),
		Arrival:           parseFlightTime(s.Arrival),
		DurationInMinutes: s.DurationInMinutes,
		FlightNumber:      s.FlightNumber,
		MarketingCarrier:  normalizeCarrier(s.MarketingCarrier),
		OperatingCarrier:  normalizeCarrier(s.OperatingCarrier),
	}
}

func normalizeSegmentPlace(p rawSegmentPlace) models.SegmentPlace {
	place := models.SegmentPlace{
		FlightPlaceID: p.FlightPlaceID,
		DisplayCode:   p.DisplayCode,
		Name:          p.Name,
		Type:          p.Type,
	}
	if p.Parent != nil {
		parent := normalizeSegmentPlace(*p.Parent)
		place.Parent = &parent
	}
	return place
}

func normalizeCarrier(c rawCarrier) models.Carrier {
	return models.Carrier{
		ID:          c.ID,
		Name:        c.Name,
		AlternateID: c.AlternateID,
		DisplayCode: c.DisplayCode,
		LogoURL:     c.LogoURL,
	}
}

func uniqueCarriers(carriers []rawCarrier) []models.Carrier {
	seen := make(map[int]bool)
	result := make([]models.Carrier, 0, len(carriers))
	for _, c := range carriers {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		result = append(result, normalizeCarrier(c))
	}
	return result
}
