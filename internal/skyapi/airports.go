package skyapi

import (
	"context"
	"net/url"

	"github.com/rdyansyah/skygate/internal/models"
)

type airportPlace struct {
	SkyID        string              `json:"skyId"`
	EntityID     string              `json:"entityId"`
	Presentation airportPresentation `json:"presentation"`
	Navigation   airportNavigation   `json:"navigation"`
}

type airportPresentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

type airportNavigation struct {
	EntityID             string             `json:"entityId"`
	EntityType           string             `json:"entityType"`
	LocalizedName        string             `json:"localizedName"`
	RelevantFlightParams airportFlightQuery `json:"relevantFlightParams"`
}

type airportFlightQuery struct {
	SkyID           string `json:"skyId"`
	EntityID        string `json:"entityId"`
	FlightPlaceType string `json:"flightPlaceType"`
	LocalizedName   string `json:"localizedName"`
}

// SearchAirports resolves a free-text query to a ranked list of airport and
// city places. An empty query is passed through and yields whatever the
// upstream suggests. A status:false answer surfaces as a NotFoundError, never
// as a silent empty list.
func (c *Client) SearchAirports(ctx context.Context, query string) ([]models.AirportPlace, error) {
	params := url.Values{
		"query":  {query},
		"locale": {defaultLocale},
	}

	var raw []airportPlace
	if err := c.get(ctx, pathSearchAirport, params, &raw); err != nil {
		return nil, err
	}

	places := make([]models.AirportPlace, 0, len(raw))
	for _, p := range raw {
		places = append(places, normalizePlace(p))
	}
	return places, nil
}

func normalizePlace(p airportPlace) models.AirportPlace {
	return models.AirportPlace{
		SkyID:    p.SkyID,
		EntityID: p.EntityID,
		Presentation: models.PlacePresentation{
			Title:           p.Presentation.Title,
			SuggestionTitle: p.Presentation.SuggestionTitle,
			Subtitle:        p.Presentation.Subtitle,
		},
		Navigation: models.PlaceNavigation{
			EntityID:      p.Navigation.EntityID,
			EntityType:    p.Navigation.EntityType,
			LocalizedName: p.Navigation.LocalizedName,
			FlightParams: models.FlightParams{
				SkyID:         p.Navigation.RelevantFlightParams.SkyID,
				EntityID:      p.Navigation.RelevantFlightParams.EntityID,
				PlaceType:     p.Navigation.RelevantFlightParams.FlightPlaceType,
				LocalizedName: p.Navigation.RelevantFlightParams.LocalizedName,
			},
		},
	}
}
