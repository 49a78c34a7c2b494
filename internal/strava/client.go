package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"strava-dashboard/internal/apperr"
	"strava-dashboard/internal/config"
	"strava-dashboard/internal/metrics"
)

const (
	baseURL        = "https://www.strava.com/api/v3"
	tokenURL       = "https://www.strava.com/oauth/token"
	defaultTimeout = 30 * time.Second

	// usage percentage of any window that triggers a warning
	nearLimitPct = 90
)

// Client is a Strava API client for a single athlete run
type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokenURL    string
	logger      *slog.Logger
	rateLimiter *RateLimiter
}

// NewClient creates a new Strava API client. Every request is bounded by
// timeout; a non-positive timeout falls back to 30s.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		tokenURL:    tokenURL,
		logger:      logger,
		rateLimiter: NewRateLimiter(),
	}
}

// SetTokenURL overrides the token endpoint (for testing)
func (c *Client) SetTokenURL(u string) {
	c.tokenURL = u
}

// SetBaseURL overrides the API base URL (for testing)
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimSuffix(u, "/")
}

// HTTPError represents an HTTP error response from Strava
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// IsNotFound returns true if the error is a 404
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized returns true if the error is a 401
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsTooManyRequests returns true if the error is a 429
func IsTooManyRequests(err error) bool {
	return statusOf(err) == http.StatusTooManyRequests
}

func statusOf(err error) int {
	if httpErr, ok := err.(*HTTPError); ok {
		return httpErr.StatusCode
	}
	return 0
}

// TokenResponse is the parsed payload of a refresh-token exchange. Payload
// keeps every field the endpoint returned, including ones not modelled here.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresAt    int64  `json:"expires_at"`
	ExpiresIn    int    `json:"expires_in"`

	Payload map[string]json.RawMessage `json:"-"`
}

// Expiry returns the access token expiry, if the endpoint reported one
func (t *TokenResponse) Expiry() (time.Time, bool) {
	if t.ExpiresAt > 0 {
		return time.Unix(t.ExpiresAt, 0), true
	}
	return time.Time{}, false
}

// RefreshToken exchanges the long-lived refresh token for a short-lived
// access token. There is no retry: any failure is returned as an AuthError.
func (c *Client) RefreshToken(ctx context.Context, creds config.Credentials) (*TokenResponse, error) {
	form := url.Values{
		"client_id":     {creds.ClientID},
		"client_secret": {creds.ClientSecret},
		"grant_type":    {"refresh_token"},
		"refresh_token": {creds.RefreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperr.Auth(apperr.StageToken, err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.observe(metrics.OpRefreshToken, 0, duration)
		c.logger.Error("token refresh failed", "error", err, "duration_ms", duration.Milliseconds())
		return nil, apperr.Auth(apperr.StageToken, err, "token exchange request failed")
	}
	defer resp.Body.Close()

	c.observe(metrics.OpRefreshToken, resp.StatusCode, duration)
	c.logger.Info("token_refresh", "status", resp.StatusCode, "duration_ms", duration.Milliseconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Auth(apperr.StageToken, err, "failed to read token response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Auth(apperr.StageToken, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)},
			"token exchange rejected with status %d, check STRAVA_CLIENT_ID, STRAVA_CLIENT_SECRET and STRAVA_REFRESH_TOKEN", resp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, apperr.Auth(apperr.StageToken, err, "token response is not a JSON object")
	}
	if err := json.Unmarshal(body, &tokenResp.Payload); err != nil {
		return nil, apperr.Auth(apperr.StageToken, err, "token response is not a JSON object")
	}

	if strings.TrimSpace(tokenResp.AccessToken) == "" {
		return nil, apperr.Auth(apperr.StageToken, nil, "no access_token returned by Strava, check your credentials")
	}

	return &tokenResp, nil
}

// observe records request count and latency for an API operation. A zero
// status means the request never produced a response.
func (c *Client) observe(op string, status int, duration time.Duration) {
	statusStr := "error"
	if status > 0 {
		statusStr = strconv.Itoa(status)
	}
	metrics.StravaAPIRequestsTotal.WithLabelValues(op, statusStr).Inc()
	metrics.StravaAPIRequestDuration.WithLabelValues(op, statusStr).Observe(duration.Seconds())
}

// updateRateLimits extracts rate limit headers from a response.
// Format: "15min,daily" for both X-RateLimit-* and X-ReadRateLimit-*.
func (c *Client) updateRateLimits(resp *http.Response) {
	overallLimit, okLimit := parsePair(resp.Header.Get("X-RateLimit-Limit"))
	overallUsage, okUsage := parsePair(resp.Header.Get("X-RateLimit-Usage"))
	if okLimit && okUsage {
		c.rateLimiter.UpdateOverall(overallLimit[0], overallUsage[0], overallLimit[1], overallUsage[1])
	}

	readLimit, okLimit := parsePair(resp.Header.Get("X-ReadRateLimit-Limit"))
	readUsage, okUsage := parsePair(resp.Header.Get("X-ReadRateLimit-Usage"))
	if okLimit && okUsage {
		c.rateLimiter.UpdateRead(readLimit[0], readUsage[0], readLimit[1], readUsage[1])
	}

	status := c.rateLimiter.Status()
	metrics.StravaRateLimitUsage.WithLabelValues(metrics.RateLimitOverall15Min, metrics.BucketLimit).Set(float64(status.Overall.Limit15Min))
	metrics.StravaRateLimitUsage.WithLabelValues(metrics.RateLimitOverall15Min, metrics.BucketUsage).Set(float64(status.Overall.Usage15Min))
	metrics.StravaRateLimitUsage.WithLabelValues(metrics.RateLimitOverallDaily, metrics.BucketLimit).Set(float64(status.Overall.LimitDaily))
	metrics.StravaRateLimitUsage.WithLabelValues(metrics.RateLimitOverallDaily, metrics.BucketUsage).Set(float64(status.Overall.UsageDaily))
	metrics.StravaRateLimitUsage.WithLabelValues(metrics.RateLimitRead15Min, metrics.BucketLimit).Set(float64(status.Read.Limit15Min))
	metrics.StravaRateLimitUsage.WithLabelValues(metrics.RateLimitRead15Min, metrics.BucketUsage).Set(float64(status.Read.Usage15Min))
	metrics.StravaRateLimitUsage.WithLabelValues(metrics.RateLimitReadDaily, metrics.BucketLimit).Set(float64(status.Read.LimitDaily))
	metrics.StravaRateLimitUsage.WithLabelValues(metrics.RateLimitReadDaily, metrics.BucketUsage).Set(float64(status.Read.UsageDaily))

	c.logger.Debug("rate_limit",
		"usage_15min", status.Overall.Usage15Min,
		"limit_15min", status.Overall.Limit15Min,
		"usage_daily", status.Overall.UsageDaily,
		"limit_daily", status.Overall.LimitDaily,
		"read_usage_15min", status.Read.Usage15Min,
		"read_usage_daily", status.Read.UsageDaily,
	)

	if c.rateLimiter.IsNearLimit(nearLimitPct) {
		c.logger.Warn("Approaching Strava rate limit",
			"usage_15min", status.Overall.Usage15Min,
			"limit_15min", status.Overall.Limit15Min,
			"usage_daily", status.Overall.UsageDaily,
			"limit_daily", status.Overall.LimitDaily,
		)
	}
}

func parsePair(header string) ([2]int, bool) {
	var out [2]int
	if header == "" {
		return out, false
	}
	parts := strings.Split(header, ",")
	if len(parts) != 2 {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// GetRateLimitStatus returns the rate limit state seen on the latest response
func (c *Client) GetRateLimitStatus() RateLimitStatus {
	return c.rateLimiter.Status()
}
