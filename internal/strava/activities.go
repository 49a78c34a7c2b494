package strava

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"strava-dashboard/internal/apperr"
	"strava-dashboard/internal/metrics"
)

// MaxPerPage is the largest page size Strava accepts
const MaxPerPage = 200

// ListOptions bounds a paginated activity listing. After and Before are epoch
// seconds and are forwarded to Strava untouched; nil means unbounded.
// MaxPages of zero means no page limit.
type ListOptions struct {
	PerPage  int
	After    *int64
	Before   *int64
	MaxPages int
}

// ListActivities fetches the logged-in athlete's activities page by page
// until an empty page is returned or MaxPages is reached. Pages are
// concatenated in request order. Any failure discards everything fetched so
// far.
func (c *Client) ListActivities(ctx context.Context, accessToken string, opts ListOptions) ([]Activity, error) {
	perPage := opts.PerPage
	if perPage < 1 || perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	httpClient := c.authorizedClient(ctx, accessToken)

	var activities []Activity
	for page := 1; ; page++ {
		batch, err := c.listPage(ctx, httpClient, page, perPage, opts)
		if err != nil {
			return nil, err
		}

		c.logger.Info("Listed activities page", "page", page, "count", len(batch))

		if len(batch) == 0 {
			break
		}
		activities = append(activities, batch...)

		if opts.MaxPages > 0 && page >= opts.MaxPages {
			break
		}
	}

	return activities, nil
}

// authorizedClient wraps the timeout-bounded client with a bearer token
func (c *Client) authorizedClient(ctx context.Context, accessToken string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
	client.Timeout = c.httpClient.Timeout
	return client
}

func (c *Client) listPage(ctx context.Context, httpClient *http.Client, page, perPage int, opts ListOptions) ([]Activity, error) {
	params := url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
	if opts.After != nil {
		params.Set("after", strconv.FormatInt(*opts.After, 10))
	}
	if opts.Before != nil {
		params.Set("before", strconv.FormatInt(*opts.Before, 10))
	}

	path := "/athlete/activities?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, apperr.Fetch(apperr.StageFetch, err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.observe(metrics.OpListActivities, 0, duration)
		c.logger.Error("request failed", "path", "/athlete/activities", "page", page, "error", err)
		return nil, apperr.Fetch(apperr.StageFetch, err, "request for page %d failed", page)
	}
	defer resp.Body.Close()

	c.observe(metrics.OpListActivities, resp.StatusCode, duration)
	c.updateRateLimits(resp)
	c.logger.Info("strava_api_request", "method", http.MethodGet, "path", "/athlete/activities", "page", page,
		"status", resp.StatusCode, "duration_ms", duration.Milliseconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Fetch(apperr.StageFetch, err, "failed to read page %d", page)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
		switch {
		case IsUnauthorized(httpErr):
			return nil, apperr.Auth(apperr.StageFetch, httpErr,
				"unauthorized (401), the access token is invalid, expired or lacks the activity:read scope")
		case IsTooManyRequests(httpErr):
			status := c.rateLimiter.Status()
			return nil, apperr.Fetch(apperr.StageFetch, httpErr,
				"rate limit exceeded (429) on page %d, 15 min usage %d/%d, daily usage %d/%d",
				page, status.Overall.Usage15Min, status.Overall.Limit15Min, status.Overall.UsageDaily, status.Overall.LimitDaily)
		case IsNotFound(httpErr):
			return nil, apperr.Fetch(apperr.StageFetch, httpErr, "activities endpoint not found (404) at %s", c.baseURL)
		default:
			return nil, apperr.Fetch(apperr.StageFetch, httpErr,
				"page %d request failed with status %d", page, resp.StatusCode)
		}
	}

	activities, err := ParseActivities(body)
	if err != nil {
		return nil, apperr.Format(apperr.StageFetch, err, "unexpected response format from Strava API on page %d", page)
	}
	return activities, nil
}
