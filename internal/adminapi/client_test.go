package adminapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, nil)
}

func TestLogin_ReturnsTokenPair(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "admin@test.dev" {
			t.Errorf("unexpected login body %v", body)
		}
		w.Write([]byte(`{"data":{"accessToken":"acc-1","refreshToken":"ref-1"}}`))
	}))

	pair, err := client.Login(context.Background(), "admin@test.dev", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken != "acc-1" || pair.RefreshToken != "ref-1" {
		t.Errorf("unexpected pair %+v", pair)
	}
}

func TestDo_RefreshesOnceOn401(t *testing.T) {
	refreshCalls := 0
	statsCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/refresh/jwt-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		w.Write([]byte(`{"data":{"accessToken":"fresh-token"}}`))
	})
	mux.HandleFunc("/admin/stats", func(w http.ResponseWriter, r *http.Request) {
		statsCalls++
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"data":{"totalUsers":42}}`))
	})

	client := newTestClient(t, mux)
	creds := &Credentials{Access: "stale-token", Refresh: "ref-1"}

	stats, err := client.Stats(context.Background(), creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalUsers != 42 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if refreshCalls != 1 {
		t.Errorf("expected exactly one refresh, got %d", refreshCalls)
	}
	if statsCalls != 2 {
		t.Errorf("expected one retry after refresh, got %d calls", statsCalls)
	}
	if !creds.Rotated || creds.Access != "fresh-token" {
		t.Errorf("expected rotated credentials, got %+v", creds)
	}
}

func TestDo_NoSecondRefreshWhenStill401(t *testing.T) {
	refreshCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/refresh/jwt-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		w.Write([]byte(`{"data":{"accessToken":"still-bad"}}`))
	})
	mux.HandleFunc("/admin/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, mux)
	creds := &Credentials{Access: "stale-token", Refresh: "ref-1"}

	_, err := client.Stats(context.Background(), creds)
	if err == nil {
		t.Fatal("expected error when retry is still unauthorized")
	}
	if refreshCalls != 1 {
		t.Errorf("refresh must only be attempted once per call, got %d", refreshCalls)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 APIError, got %v", err)
	}
}

func TestDo_ExpiredTokenRefreshedBeforeRequest(t *testing.T) {
	authHeaders := []string{}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/refresh/jwt-token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"accessToken":"fresh-token"}}`))
	})
	mux.HandleFunc("/roles", func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[{"id":"r1","name":"ADMIN"}]}`))
	})

	client := newTestClient(t, mux)
	creds := &Credentials{Access: unsignedToken(t, time.Now().Add(-time.Hour)), Refresh: "ref-1"}

	roles, err := client.Roles(context.Background(), creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roles) != 1 || roles[0].Name != "ADMIN" {
		t.Errorf("unexpected roles %+v", roles)
	}
	if len(authHeaders) != 1 || authHeaders[0] != "Bearer fresh-token" {
		t.Errorf("expected proactive refresh before the call, got %v", authHeaders)
	}
}

func TestTokenExpired(t *testing.T) {
	if tokenExpired(unsignedToken(t, time.Now().Add(time.Hour))) {
		t.Error("future exp must not read as expired")
	}
	if !tokenExpired(unsignedToken(t, time.Now().Add(-time.Hour))) {
		t.Error("past exp must read as expired")
	}
	if tokenExpired("not-a-jwt") {
		t.Error("unparseable tokens are left to the back end to reject")
	}
}

func unsignedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp.Unix())))
	return header + "." + claims + "."
}
