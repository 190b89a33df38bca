package skyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rdyansyah/skygate/internal/models"
)

type detailData struct {
	Itinerary rawDetailItinerary `json:"itinerary"`
}

type rawDetailItinerary struct {
	ID             string             `json:"id"`
	Legs           []rawLeg           `json:"legs"`
	PricingOptions []rawPricingOption `json:"pricingOptions"`
}

type rawPricingOption struct {
	TotalPrice float64    `json:"totalPrice"`
	Agents     []rawAgent `json:"agents"`
}

type rawAgent struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	URL                string     `json:"url"`
	Price              float64    `json:"price"`
	BookingProposition string     `json:"bookingProposition"`
	Rating             *rawRating `json:"rating"`
	QuoteAge           int        `json:"quoteAge"`
}

type rawRating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// FlightDetails fetches the full detail of one itinerary from an earlier
// search. The upstream hands back several equivalent itinerary ids per
// result; candidates are tried one at a time in the given order, first
// success wins, and each candidate gets exactly one attempt. When every
// candidate fails the aggregate error keeps all per-candidate failures.
func (c *Client) FlightDetails(ctx context.Context, session models.SearchSession, itineraryIDs []string, legs []models.DetailLeg) (*models.ItineraryDetail, error) {
	if len(itineraryIDs) == 0 {
		return nil, &models.ValidationError{Field: "itineraryId", Message: "at least one itinerary id is required"}
	}
	if len(legs) == 0 {
		return nil, &models.ValidationError{Field: "legs", Message: "at least one leg is required"}
	}

	legsJSON, err := json.Marshal(legs)
	if err != nil {
		return nil, &models.ValidationError{Field: "legs", Message: err.Error()}
	}

	var attempts []error
	for _, id := range itineraryIDs {
		params := url.Values{
			"legs":        {string(legsJSON)},
			"sessionId":   {string(session)},
			"itineraryId": {id},
			"locale":      {defaultLocale},
		}

		var raw detailData
		if err := c.get(ctx, pathGetFlightDetails, params, &raw); err != nil {
			attempts = append(attempts, fmt.Errorf("itinerary %s: %w", id, err))
			continue
		}

		detail := normalizeDetail(raw.Itinerary)
		return &detail, nil
	}

	return nil, &ExhaustedCandidatesError{Errors: attempts}
}

func normalizeDetail(it rawDetailItinerary) models.ItineraryDetail {
	legs := make([]models.Leg, 0, len(it.Legs))
	for _, l := range it.Legs {
		legs = append(legs, normalizeLeg(l))
	}

	options := make([]models.PricingOption, 0, len(it.PricingOptions))
	for _, o := range it.PricingOptions {
		agents := make([]models.BookingAgent, 0, len(o.Agents))
		for _, a := range o.Agents {
			agent := models.BookingAgent{
				ID:                 a.ID,
				Name:               a.Name,
				URL:                a.URL,
				Price:              a.Price,
				BookingProposition: a.BookingProposition,
				QuoteAgeInMinutes:  a.QuoteAge,
			}
			if a.Rating != nil {
				agent.Rating = &models.AgentRating{Value: a.Rating.Value, Count: a.Rating.Count}
			}
			agents = append(agents, agent)
		}
		options = append(options, models.PricingOption{
			TotalPrice: o.TotalPrice,
			Agents:     agents,
		})
	}

	return models.ItineraryDetail{
		ID:             it.ID,
		Legs:           legs,
		PricingOptions: options,
	}
}
