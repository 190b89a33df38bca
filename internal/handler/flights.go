package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rdyansyah/skygate/internal/cache"
	"github.com/rdyansyah/skygate/internal/filter"
	"github.com/rdyansyah/skygate/internal/models"
	"github.com/rdyansyah/skygate/internal/query"
	"github.com/rdyansyah/skygate/internal/skyapi"
)

type FlightHandler struct {
	sky   *skyapi.Client
	cache cache.Cache
}

func NewFlightHandler(sky *skyapi.Client, c cache.Cache) *FlightHandler {
	return &FlightHandler{
		sky:   sky,
		cache: c,
	}
}

func (h *FlightHandler) SearchAirports(c echo.Context) error {
	places, err := h.sky.SearchAirports(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, places)
}

func (h *FlightHandler) SearchFlights(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	criteria := query.Decode(c.QueryParams())
	if err := criteria.Validate(); err != nil {
		return writeError(c, err)
	}

	key := cache.SearchKey(criteria)
	cacheHit := false
	var result models.SearchResult
	if data, found := h.cache.Get(ctx, key); found {
		if err := json.Unmarshal(data, &result); err == nil {
			cacheHit = true
		}
	}

	if !cacheHit {
		res, err := h.sky.SearchFlights(ctx, criteria)
		if err != nil {
			return writeError(c, err)
		}
		result = *res
		if data, err := json.Marshal(result); err == nil {
			_ = h.cache.Set(ctx, key, data)
		}
	}

	itineraries := filter.Apply(result.Itineraries, filterOptions(c))

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: criteria,
		Metadata: models.SearchMetadata{
			TotalResults: len(itineraries),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		SessionID:   result.Session,
		Itineraries: itineraries,
	})
}

func (h *FlightHandler) PriceCalendar(c echo.Context) error {
	ctx := c.Request().Context()

	origin := c.QueryParam("originSkyId")
	destination := c.QueryParam("destinationSkyId")
	if len(origin) < 3 {
		return writeError(c, &models.ValidationError{Field: "originSkyId", Message: "skyId must be at least 3 characters"})
	}
	if len(destination) < 3 {
		return writeError(c, &models.ValidationError{Field: "destinationSkyId", Message: "skyId must be at least 3 characters"})
	}

	month := time.Now()
	if v := c.QueryParam("month"); v != "" {
		parsed, err := time.Parse(models.DateLayout, v)
		if err != nil {
			return writeError(c, &models.ValidationError{Field: "month", Message: "must be a YYYY-MM-DD date"})
		}
		month = parsed
	}

	key := cache.CalendarKey(origin, destination, month.Format(models.DateLayout))
	if data, found := h.cache.Get(ctx, key); found {
		var cal models.PriceCalendar
		if err := json.Unmarshal(data, &cal); err == nil {
			return c.JSON(http.StatusOK, cal)
		}
	}

	cal, err := h.sky.PriceCalendar(ctx, origin, destination, month)
	if err != nil {
		return writeError(c, err)
	}
	if data, err := json.Marshal(cal); err == nil {
		_ = h.cache.Set(ctx, key, data)
	}
	return c.JSON(http.StatusOK, cal)
}

func (h *FlightHandler) FlightDetails(c echo.Context) error {
	ctx := c.Request().Context()

	session := models.SearchSession(c.QueryParam("sessionId"))
	if session == "" {
		return writeError(c, &models.ValidationError{Field: "sessionId", Message: "session id is required"})
	}

	candidates := splitCandidates(c.QueryParam("itineraryId"))

	var legs []models.DetailLeg
	if raw := c.QueryParam("legs"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &legs); err != nil {
			return writeError(c, &models.ValidationError{Field: "legs", Message: "must be a JSON array of {origin, destination, date}"})
		}
	}

	detail, err := h.sky.FlightDetails(ctx, session, candidates, legs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// splitCandidates breaks the upstream's delimited itinerary-id list into
// ordered candidates.
func splitCandidates(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ','
	})
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func filterOptions(c echo.Context) filter.Options {
	opts := filter.Options{
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	if v := c.QueryParam("priceMin"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.PriceMin = &f
		}
	}
	if v := c.QueryParam("priceMax"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.PriceMax = &f
		}
	}
	if v := c.QueryParam("maxStops"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.MaxStops = &n
		}
	}
	return opts
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
