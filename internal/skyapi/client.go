package skyapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rdyansyah/skygate/internal/ratelimit"
)

// Upstream endpoint paths, relative to the configured base URL.
const (
	pathSearchAirport    = "/searchAirport"
	pathSearchFlights    = "/searchFlights"
	pathGetPriceCalendar = "/getPriceCalendar"
	pathGetFlightDetails = "/getFlightDetails"
)

// Fixed request parameters attached by configuration, never by callers.
const (
	defaultLocale   = "en-US"
	defaultMarket   = "en-US"
	defaultCountry  = "US"
	defaultCurrency = "USD"
	defaultSort     = "best"
)

type Config struct {
	BaseURL    string
	APIKey     string
	APIHost    string
	HTTPClient *http.Client
	Limiter    *ratelimit.EndpointLimiter
}

// Client is a typed client for the upstream flight-data API. It is stateless
// and safe for concurrent use; configuration is read-only after construction.
type Client struct {
	baseURL string
	apiKey  string
	apiHost string
	http    *http.Client
	limiter *ratelimit.EndpointLimiter
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		apiHost: cfg.APIHost,
		http:    httpClient,
		limiter: cfg.Limiter,
	}
}

// envelope is the uniform {status, data} wrapper every upstream response
// arrives in.
type envelope struct {
	Status bool            `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// get performs one authenticated GET and unwraps the response envelope into
// dest. status:false becomes a NotFoundError; non-2xx responses and network
// failures become TransportErrors carrying the upstream payload verbatim.
func (c *Client) get(ctx context.Context, path string, params url.Values, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, path); err != nil {
			return err
		}
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{Body: []byte(err.Error())}
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Body: []byte(err.Error())}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Body: []byte(err.Error())}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{StatusCode: resp.StatusCode, Body: body}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Body: body}
	}
	if !env.Status {
		return errNotFound()
	}

	if dest == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Body: env.Data}
	}
	return nil
}

// parseFlightTime parses the upstream's local datetime stamps, which arrive
// with or without a zone offset.
func parseFlightTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02T15:04:05", s)
	return t
}
