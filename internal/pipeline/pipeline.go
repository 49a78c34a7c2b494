// Package pipeline runs one acquisition: resolve credentials, exchange the
// refresh token, fetch every activity page and export the collection.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"strava-dashboard/internal/apperr"
	"strava-dashboard/internal/config"
	"strava-dashboard/internal/export"
	"strava-dashboard/internal/metrics"
	"strava-dashboard/internal/strava"
)

// DefaultOutput is where the dashboard expects the export
const DefaultOutput = "data/activities.json"

// CredentialResolver supplies the athlete's credentials for one run
type CredentialResolver interface {
	Resolve() (*config.Credentials, error)
}

// Options configures a run. After and Before are inclusive calendar dates
// (YYYY-MM-DD) interpreted at midnight in Location.
type Options struct {
	Out      string
	PerPage  int
	MaxPages int
	After    string
	Before   string

	Credentials CredentialResolver
	Client      *strava.Client
	Timeout     time.Duration
	Location    *time.Location
	Logger      *slog.Logger
}

// Result describes a completed run
type Result struct {
	RunID      string
	Path       string
	Format     export.Format
	Count      int
	ExportedAt time.Time
}

// Summary is the one-line report printed after a successful run
func (r *Result) Summary() string {
	return fmt.Sprintf("Saved %d activities to %s", r.Count, r.Path)
}

// ParseDate converts a YYYY-MM-DD date to epoch seconds at local midnight.
// An empty value means no bound.
func ParseDate(value string, loc *time.Location) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return nil, apperr.Configuration(apperr.StageResolve, err, "invalid date %q, expected YYYY-MM-DD", value)
	}
	epoch := t.Unix()
	return &epoch, nil
}

// Run executes the acquisition. Dates are validated before credentials are
// read, and nothing touches the network until both succeed. Any failure is
// fatal and leaves the previous export untouched.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	res, err := run(ctx, runID, opts, logger)
	if err != nil {
		kind := apperr.Kind(err)
		metrics.ExportRunsTotal.WithLabelValues(metrics.ResultFailure, kind).Inc()
		logger.Error("Export run failed", "kind", kind, "error", err)
		return nil, err
	}

	metrics.ExportRunsTotal.WithLabelValues(metrics.ResultSuccess, "").Inc()
	metrics.ExportedActivitiesCount.Observe(float64(res.Count))
	logger.Info("Export run completed", "count", res.Count, "path", res.Path, "format", res.Format)
	return res, nil
}

func run(ctx context.Context, runID string, opts Options, logger *slog.Logger) (*Result, error) {
	after, err := ParseDate(opts.After, opts.Location)
	if err != nil {
		return nil, err
	}
	before, err := ParseDate(opts.Before, opts.Location)
	if err != nil {
		return nil, err
	}

	resolver := opts.Credentials
	if resolver == nil {
		resolver = config.DefaultCredentialSource()
	}
	creds, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		client = strava.NewClient(opts.Timeout, logger)
	}

	token, err := client.RefreshToken(ctx, *creds)
	if err != nil {
		return nil, err
	}
	if expiry, ok := token.Expiry(); ok {
		logger.Debug("Access token issued", "expires_at", expiry)
	}

	logger.Debug("Fetching activities", "after", FormatEpoch(after), "before", FormatEpoch(before),
		"per_page", opts.PerPage, "max_pages", opts.MaxPages)
	activities, err := client.ListActivities(ctx, token.AccessToken, strava.ListOptions{
		PerPage:  opts.PerPage,
		After:    after,
		Before:   before,
		MaxPages: opts.MaxPages,
	})
	if err != nil {
		return nil, err
	}

	status := client.GetRateLimitStatus()
	logger.Debug("Rate limit status",
		"overall_15min", status.Overall.Usage15Min, "overall_daily", status.Overall.UsageDaily,
		"read_15min", status.Read.Usage15Min, "read_daily", status.Read.UsageDaily)

	out := opts.Out
	if out == "" {
		out = DefaultOutput
	}
	exportedAt := time.Now().UTC()
	format, err := export.Write(out, activities, export.Options{
		ExportedAt: exportedAt,
		RunID:      runID,
		After:      after,
		Before:     before,
	})
	if err != nil {
		return nil, apperr.Export(apperr.StageExport, err, "failed to export %d activities", len(activities))
	}

	return &Result{
		RunID:      runID,
		Path:       out,
		Format:     format,
		Count:      len(activities),
		ExportedAt: exportedAt,
	}, nil
}

// FormatEpoch renders an optional epoch bound for logs
func FormatEpoch(epoch *int64) string {
	if epoch == nil {
		return "unbounded"
	}
	return strconv.FormatInt(*epoch, 10)
}
