// Package query translates search-form state to and from the navigable URL
// query string that seeds the flight adapters.
package query

import (
	"net/url"
	"strconv"

	"github.com/rdyansyah/skygate/internal/models"
)

// Encode renders criteria as the shareable query string. returnDate is
// omitted for one-way trips.
func Encode(criteria models.SearchCriteria) url.Values {
	params := url.Values{
		"tripType":            {criteria.TripType},
		"originSkyId":         {criteria.Origin.SkyID},
		"originEntityId":      {criteria.Origin.EntityID},
		"originLabel":         {criteria.Origin.Label},
		"destinationSkyId":    {criteria.Destination.SkyID},
		"destinationEntityId": {criteria.Destination.EntityID},
		"destinationLabel":    {criteria.Destination.Label},
		"departureDate":       {criteria.DepartureDate},
		"adults":              {strconv.Itoa(criteria.Adults)},
		"cabinClass":          {criteria.CabinClass},
	}
	if criteria.TripType == models.TripRoundTrip && criteria.ReturnDate != "" {
		params.Set("returnDate", criteria.ReturnDate)
	}
	return params
}

// Decode rebuilds criteria from a query string. Missing optional keys fall
// back to the form defaults; the result is not validated here.
func Decode(params url.Values) models.SearchCriteria {
	criteria := models.SearchCriteria{
		TripType:   params.Get("tripType"),
		CabinClass: params.Get("cabinClass"),
		Origin: models.PlaceRef{
			SkyID:    params.Get("originSkyId"),
			EntityID: params.Get("originEntityId"),
			Label:    params.Get("originLabel"),
		},
		Destination: models.PlaceRef{
			SkyID:    params.Get("destinationSkyId"),
			EntityID: params.Get("destinationEntityId"),
			Label:    params.Get("destinationLabel"),
		},
		DepartureDate: params.Get("departureDate"),
		ReturnDate:    params.Get("returnDate"),
		Adults:        1,
	}

	if criteria.TripType == "" {
		criteria.TripType = models.TripOneWay
	}
	if criteria.CabinClass == "" {
		criteria.CabinClass = models.CabinEconomy
	}
	if v := params.Get("adults"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.Adults = n
		}
	}
	return criteria
}
