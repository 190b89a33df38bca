package models

type PlacePresentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

// FlightParams are the re-queryable identifiers nested inside a place's
// navigation record.
type FlightParams struct {
	SkyID         string `json:"skyId"`
	EntityID      string `json:"entityId"`
	PlaceType     string `json:"flightPlaceType"`
	LocalizedName string `json:"localizedName"`
}

type PlaceNavigation struct {
	EntityID      string       `json:"entityId"`
	EntityType    string       `json:"entityType"`
	LocalizedName string       `json:"localizedName"`
	FlightParams  FlightParams `json:"relevantFlightParams"`
}

// AirportPlace is one ranked airport lookup result. It is immutable once
// fetched; any caching happens above this layer.
type AirportPlace struct {
	SkyID        string            `json:"skyId"`
	EntityID     string            `json:"entityId"`
	Presentation PlacePresentation `json:"presentation"`
	Navigation   PlaceNavigation   `json:"navigation"`
}
