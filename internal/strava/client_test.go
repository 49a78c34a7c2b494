package strava

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strava-dashboard/internal/apperr"
	"strava-dashboard/internal/config"
)

var testCreds = config.Credentials{
	ClientID:     "test_client_id",
	ClientSecret: "test_client_secret",
	RefreshToken: "test_refresh_token",
}

func newTestClient(t *testing.T, tokenURL, apiURL string) *Client {
	t.Helper()
	client := NewClient(5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if tokenURL != "" {
		client.SetTokenURL(tokenURL)
	}
	if apiURL != "" {
		client.SetBaseURL(apiURL)
	}
	return client
}

func TestRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test_client_id", r.FormValue("client_id"))
		assert.Equal(t, "test_client_secret", r.FormValue("client_secret"))
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		assert.Equal(t, "test_refresh_token", r.FormValue("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"X","refresh_token":"R2","expires_at":1760000000,"expires_in":21600,"token_type":"Bearer","athlete":{"id":1}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	tokenResp, err := client.RefreshToken(context.Background(), testCreds)
	require.NoError(t, err)

	assert.Equal(t, "X", tokenResp.AccessToken)
	assert.Equal(t, "R2", tokenResp.RefreshToken)
	assert.Equal(t, 21600, tokenResp.ExpiresIn)
	assert.JSONEq(t, `"X"`, string(tokenResp.Payload["access_token"]))
	assert.Contains(t, tokenResp.Payload, "athlete")

	expiry, ok := tokenResp.Expiry()
	assert.True(t, ok)
	assert.Equal(t, int64(1760000000), expiry.Unix())
}

func TestRefreshTokenUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Bad Request","errors":[{"field":"refresh_token","code":"invalid"}]}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	_, err := client.RefreshToken(context.Background(), testCreds)
	require.Error(t, err)

	var authErr *apperr.AuthError
	require.ErrorAs(t, err, &authErr)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.True(t, IsUnauthorized(httpErr))
}

func TestRefreshTokenMissingAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token_type":"Bearer","expires_in":21600}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	_, err := client.RefreshToken(context.Background(), testCreds)

	var authErr *apperr.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "no access_token")
}

func TestRefreshTokenTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(t, url, "")

	_, err := client.RefreshToken(context.Background(), testCreds)

	var authErr *apperr.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestRefreshTokenTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.SetTokenURL(server.URL)

	start := time.Now()
	_, err := client.RefreshToken(context.Background(), testCreds)

	var authErr *apperr.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRateLimitTracking(t *testing.T) {
	client := newTestClient(t, "", "")

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Header: http.Header{
			"X-Ratelimit-Usage":     []string{"150,1500"},
			"X-Ratelimit-Limit":     []string{"200,2000"},
			"X-Readratelimit-Usage": []string{"75,900"},
			"X-Readratelimit-Limit": []string{"100,1000"},
		},
		Body: http.NoBody,
	}

	client.updateRateLimits(mockResp)
	status := client.GetRateLimitStatus()

	assert.Equal(t, LimitWindow{Limit15Min: 200, Usage15Min: 150, LimitDaily: 2000, UsageDaily: 1500}, status.Overall)
	assert.Equal(t, LimitWindow{Limit15Min: 100, Usage15Min: 75, LimitDaily: 1000, UsageDaily: 900}, status.Read)
	assert.False(t, status.LastUpdated.IsZero())
}

func TestRateLimitMalformedHeadersIgnored(t *testing.T) {
	client := newTestClient(t, "", "")

	client.updateRateLimits(&http.Response{
		Header: http.Header{
			"X-Ratelimit-Usage": []string{"abc"},
			"X-Ratelimit-Limit": []string{"200,2000"},
		},
	})

	status := client.GetRateLimitStatus()
	assert.Equal(t, 200, status.Overall.Limit15Min)
	assert.Equal(t, 0, status.Overall.Usage15Min)
	assert.True(t, status.LastUpdated.IsZero())
}

func TestHTTPError_Helpers(t *testing.T) {
	assert.True(t, IsNotFound(&HTTPError{StatusCode: 404, Body: "Not Found"}))
	assert.True(t, IsUnauthorized(&HTTPError{StatusCode: 401, Body: "Unauthorized"}))
	assert.True(t, IsTooManyRequests(&HTTPError{StatusCode: 429, Body: "Too Many Requests"}))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestTokenResponsePayloadKeepsUnknownFields(t *testing.T) {
	var tr TokenResponse
	body := []byte(`{"access_token":"a","scope":"read,activity:read_all"}`)
	require.NoError(t, json.Unmarshal(body, &tr))
	require.NoError(t, json.Unmarshal(body, &tr.Payload))

	assert.Equal(t, "a", tr.AccessToken)
	assert.JSONEq(t, `"read,activity:read_all"`, string(tr.Payload["scope"]))

	_, ok := tr.Expiry()
	assert.False(t, ok)
}

func TestRateLimitNearLimitLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	client := newTestClient(t, "", "")
	client.logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	client.updateRateLimits(&http.Response{Header: http.Header{
		"X-Ratelimit-Limit": []string{"200,2000"},
		"X-Ratelimit-Usage": []string{"50,100"},
	}})
	assert.Empty(t, buf.String())

	client.updateRateLimits(&http.Response{Header: http.Header{
		"X-Ratelimit-Limit": []string{"200,2000"},
		"X-Ratelimit-Usage": []string{"185,100"},
	}})
	assert.Contains(t, buf.String(), "Approaching Strava rate limit")
	assert.Contains(t, buf.String(), "usage_15min=185")
}
