package filter

import (
	"sort"
	"strings"

	"github.com/rdyansyah/skygate/internal/models"
)

// Options narrow and order a normalized result list before it reaches the
// list view. All fields are optional.
type Options struct {
	PriceMin  *float64
	PriceMax  *float64
	MaxStops  *int
	SortBy    string
	SortOrder string
}

// Apply filters itineraries and sorts the survivors. The zero Options value
// passes everything through in upstream order.
func Apply(itineraries []models.Itinerary, opts Options) []models.Itinerary {
	filtered := make([]models.Itinerary, 0, len(itineraries))
	for _, it := range itineraries {
		if matches(it, opts) {
			filtered = append(filtered, it)
		}
	}

	return applySort(filtered, opts.SortBy, opts.SortOrder)
}

func matches(it models.Itinerary, opts Options) bool {
	if opts.PriceMin != nil && it.Price.Raw < *opts.PriceMin {
		return false
	}
	if opts.PriceMax != nil && it.Price.Raw > *opts.PriceMax {
		return false
	}
	if opts.MaxStops != nil {
		for _, leg := range it.Legs {
			if leg.StopCount > *opts.MaxStops {
				return false
			}
		}
	}
	return true
}

func applySort(itineraries []models.Itinerary, sortBy, sortOrder string) []models.Itinerary {
	if len(itineraries) == 0 {
		return itineraries
	}

	ascending := strings.ToLower(sortOrder) != "desc"

	switch strings.ToLower(sortBy) {
	case "price":
		sort.SliceStable(itineraries, func(i, j int) bool {
			if ascending {
				return itineraries[i].Price.Raw < itineraries[j].Price.Raw
			}
			return itineraries[i].Price.Raw > itineraries[j].Price.Raw
		})

	case "duration":
		sort.SliceStable(itineraries, func(i, j int) bool {
			if ascending {
				return totalDuration(itineraries[i]) < totalDuration(itineraries[j])
			}
			return totalDuration(itineraries[i]) > totalDuration(itineraries[j])
		})

	case "departure":
		sort.SliceStable(itineraries, func(i, j int) bool {
			if len(itineraries[i].Legs) == 0 || len(itineraries[j].Legs) == 0 {
				return false
			}
			if ascending {
				return itineraries[i].Legs[0].Departure.Before(itineraries[j].Legs[0].Departure)
			}
			return itineraries[i].Legs[0].Departure.After(itineraries[j].Legs[0].Departure)
		})
	}

	return itineraries
}

func totalDuration(it models.Itinerary) int {
	total := 0
	for _, leg := range it.Legs {
		total += leg.DurationInMinutes
	}
	return total
}
