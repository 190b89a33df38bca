package models

// Price tiers a calendar day can fall into, relative to the route's observed
// fare range.
const (
	TierLow    = "low"
	TierMedium = "medium"
	TierHigh   = "high"
)

type PriceGroup struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type PriceCalendarDay struct {
	Day   string  `json:"day"`
	Tier  string  `json:"group"`
	Price float64 `json:"price"`
}

// PriceCalendar is one month of per-day fares for a route. Days may be empty
// when the upstream has no prices for the window.
type PriceCalendar struct {
	Currency     string             `json:"currency"`
	NoPriceLabel string             `json:"noPriceLabel,omitempty"`
	Groups       []PriceGroup       `json:"groups"`
	Days         []PriceCalendarDay `json:"days"`
}
