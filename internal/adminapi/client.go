// Package adminapi is the client for the first-party admin back end. Every
// authenticated call carries a bearer token; an expired token is refreshed at
// most once per call and the rotated token is reported back through
// Credentials so the edge can re-set its cookie.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Credentials hold the caller's tokens for the duration of one request.
// Rotated is set when the access token was replaced mid-call.
type Credentials struct {
	Access  string
	Refresh string
	Rotated bool
}

// APIError is a non-2xx answer from the admin back end, payload preserved.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("admin api HTTP %d: %s", e.StatusCode, e.Body)
}

// payload is the {data: ...} wrapper the admin back end answers with.
type payload struct {
	Data json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, creds *Credentials, method, path string, body, dest any) error {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	// An access token that is already expired by its own claims will never
	// pass auth; refresh up front instead of burning a round trip.
	if creds != nil && creds.Access != "" && creds.Refresh != "" && tokenExpired(creds.Access) {
		if err := c.refreshAccess(ctx, creds); err != nil {
			return err
		}
	}

	status, respBody, err := c.attempt(ctx, creds, method, path, reqBody)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && creds != nil && creds.Refresh != "" && !creds.Rotated {
		if err := c.refreshAccess(ctx, creds); err != nil {
			return err
		}
		status, respBody, err = c.attempt(ctx, creds, method, path, reqBody)
		if err != nil {
			return err
		}
	}

	if status < 200 || status > 299 {
		return &APIError{StatusCode: status, Body: respBody}
	}

	if dest == nil {
		return nil
	}
	var p payload
	if err := json.Unmarshal(respBody, &p); err != nil {
		return &APIError{StatusCode: status, Body: respBody}
	}
	if len(p.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(p.Data, dest); err != nil {
		return &APIError{StatusCode: status, Body: p.Data}
	}
	return nil
}

func (c *Client) attempt(ctx context.Context, creds *Credentials, method, path string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds != nil && creds.Access != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}

func (c *Client) refreshAccess(ctx context.Context, creds *Credentials) error {
	body, err := json.Marshal(map[string]string{"token": creds.Refresh})
	if err != nil {
		return err
	}

	status, respBody, err := c.attempt(ctx, nil, http.MethodPost, "/v1/auth/refresh/jwt-token", body)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &APIError{StatusCode: status, Body: respBody}
	}

	var p payload
	if err := json.Unmarshal(respBody, &p); err != nil {
		return &APIError{StatusCode: status, Body: respBody}
	}
	var pair TokenPair
	if err := json.Unmarshal(p.Data, &pair); err != nil {
		return &APIError{StatusCode: status, Body: p.Data}
	}

	creds.Access = pair.AccessToken
	creds.Rotated = true
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the back end's job, this is only expiry
// detection.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}

func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	body := map[string]string{"email": email, "password": password}
	var pair TokenPair
	if err := c.do(ctx, nil, http.MethodPost, "/v1/auth/login", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *Client) Me(ctx context.Context, creds *Credentials) (*User, error) {
	var user User
	if err := c.do(ctx, creds, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context, creds *Credentials, query url.Values) ([]User, error) {
	path := "/admin/users"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var users []User
	if err := c.do(ctx, creds, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, creds *Credentials, id string, dto UserUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, creds, http.MethodPut, "/admin/users/"+url.PathEscape(id), dto, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, creds *Credentials, id string) error {
	return c.do(ctx, creds, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil)
}

func (c *Client) InviteUser(ctx context.Context, creds *Credentials, dto UserInvite) error {
	return c.do(ctx, creds, http.MethodPost, "/admin/users/invite", dto, nil)
}

func (c *Client) Stats(ctx context.Context, creds *Credentials) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, creds, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ListSites(ctx context.Context, creds *Credentials, query url.Values) ([]Site, error) {
	path := "/admin/site/list"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var sites []Site
	if err := c.do(ctx, creds, http.MethodGet, path, nil, &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

func (c *Client) ApplyBan(ctx context.Context, creds *Credentials, dto BanRequest) error {
	return c.do(ctx, creds, http.MethodPost, "/admin/site/apply-ban", dto, nil)
}

func (c *Client) Roles(ctx context.Context, creds *Credentials) ([]Role, error) {
	var roles []Role
	if err := c.do(ctx, creds, http.MethodGet, "/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
