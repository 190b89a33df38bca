package models

import "time"

// SearchSession is the opaque token returned by a flight search. It binds a
// result set to later itinerary-detail lookups and carries no inspectable
// structure.
type SearchSession string

type Carrier struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	AlternateID string `json:"alternateId,omitempty"`
	DisplayCode string `json:"displayCode,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

type Price struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

// PlaceSummary is the leg-level view of an airport or city.
type PlaceSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayCode string `json:"displayCode"`
	City        string `json:"city,omitempty"`
}

// SegmentPlace carries the segment-level airport detail, including the parent
// place (the city an airport belongs to) when the upstream provides one.
type SegmentPlace struct {
	FlightPlaceID string        `json:"flightPlaceId"`
	DisplayCode   string        `json:"displayCode"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Parent        *SegmentPlace `json:"parent,omitempty"`
}

// Segment is one physically flown flight number within a leg.
type Segment struct {
	ID                string       `json:"id"`
	Origin            SegmentPlace `json:"origin"`
	Destination       SegmentPlace `json:"destination"`
	Departure         time.Time    `json:"departure"`
	Arrival           time.Time    `json:"arrival"`
	DurationInMinutes int          `json:"durationInMinutes"`
	FlightNumber      string       `json:"flightNumber"`
	MarketingCarrier  Carrier      `json:"marketingCarrier"`
	OperatingCarrier  Carrier      `json:"operatingCarrier"`
}

// Leg is one directional trip between two places, outbound or return.
// MarketingCarriers is de-duplicated by carrier id.
type Leg struct {
	ID                string       `json:"id"`
	Origin            PlaceSummary `json:"origin"`
	Destination       PlaceSummary `json:"destination"`
	DurationInMinutes int          `json:"durationInMinutes"`
	StopCount         int          `json:"stopCount"`
	Departure         time.Time    `json:"departure"`
	Arrival           time.Time    `json:"arrival"`
	TimeDeltaInDays   int          `json:"timeDeltaInDays"`
	MarketingCarriers []Carrier    `json:"carriers"`
	Segments          []Segment    `json:"segments"`
}

// Itinerary is one priced, bookable flight option.
type Itinerary struct {
	ID    string `json:"id"`
	Price Price  `json:"price"`
	Legs  []Leg  `json:"legs"`
}

// SearchResult pairs the normalized itineraries with the session identifier
// required by follow-up detail calls.
type SearchResult struct {
	Session     SearchSession `json:"sessionId"`
	Itineraries []Itinerary   `json:"itineraries"`
}

type AgentRating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// BookingAgent is one bookable offer inside a pricing option.
type BookingAgent struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	URL                string       `json:"url"`
	Price              float64      `json:"price"`
	BookingProposition string       `json:"bookingProposition,omitempty"`
	Rating             *AgentRating `json:"rating,omitempty"`
	QuoteAgeInMinutes  int          `json:"quoteAge"`
}

type PricingOption struct {
	TotalPrice float64        `json:"totalPrice"`
	Agents     []BookingAgent `json:"agents"`
}

// ItineraryDetail is the expanded view of a single itinerary after a detail
// fetch: the full leg/segment breakdown plus every bookable pricing option.
type ItineraryDetail struct {
	ID             string          `json:"id"`
	Legs           []Leg           `json:"legs"`
	PricingOptions []PricingOption `json:"pricingOptions"`
}
