package skyapi

import (
	"context"
	"net/url"
	"time"

	"github.com/rdyansyah/skygate/internal/models"
)

type calendarData struct {
	Flights calendarFlights `json:"flights"`
}

type calendarFlights struct {
	NoPriceLabel string          `json:"noPriceLabel"`
	Groups       []calendarGroup `json:"groups"`
	Days         []calendarDay   `json:"days"`
	Currency     string          `json:"currency"`
}

type calendarGroup struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type calendarDay struct {
	Day   string  `json:"day"`
	Group string  `json:"group"`
	Price float64 `json:"price"`
}

// PriceCalendar fetches the per-day fare breakdown for a route over a window
// of exactly one calendar month starting at month. A route with no prices
// yields an empty Days slice, not an error.
func (c *Client) PriceCalendar(ctx context.Context, originSkyID, destinationSkyID string, month time.Time) (*models.PriceCalendar, error) {
	params := url.Values{
		"originSkyId":      {originSkyID},
		"destinationSkyId": {destinationSkyID},
		"fromDate":         {month.Format(models.DateLayout)},
		"toDate":           {month.AddDate(0, 1, 0).Format(models.DateLayout)},
		"currency":         {defaultCurrency},
	}

	var raw calendarData
	if err := c.get(ctx, pathGetPriceCalendar, params, &raw); err != nil {
		return nil, err
	}

	cal := &models.PriceCalendar{
		Currency:     raw.Flights.Currency,
		NoPriceLabel: raw.Flights.NoPriceLabel,
		Groups:       make([]models.PriceGroup, 0, len(raw.Flights.Groups)),
		Days:         make([]models.PriceCalendarDay, 0, len(raw.Flights.Days)),
	}
	for _, g := range raw.Flights.Groups {
		cal.Groups = append(cal.Groups, models.PriceGroup{ID: g.ID, Label: g.Label})
	}
	for _, d := range raw.Flights.Days {
		cal.Days = append(cal.Days, models.PriceCalendarDay{
			Day:   d.Day,
			Tier:  d.Group,
			Price: d.Price,
		})
	}
	return cal, nil
}
