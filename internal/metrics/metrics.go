package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label value constants to prevent typos
const (
	// HTTP endpoints
	EndpointDashboard = "dashboard"
	EndpointRefresh   = "refresh"
	EndpointHealth    = "health"

	// Strava API operations
	OpRefreshToken   = "refresh_token"
	OpListActivities = "list_activities"

	// Rate limit types
	RateLimitOverall15Min = "overall_15min"
	RateLimitOverallDaily = "overall_daily"
	RateLimitRead15Min    = "read_15min"
	RateLimitReadDaily    = "read_daily"

	// Rate limit buckets
	BucketLimit = "limit"
	BucketUsage = "usage"

	// Pipeline and dataset results
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint", "status_code"},
	)
)

// Strava API Metrics
var (
	StravaAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strava_api_requests_total",
			Help: "Total number of Strava API requests",
		},
		[]string{"operation", "status_code"},
	)

	StravaAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "strava_api_request_duration_seconds",
			Help:    "Strava API request latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"operation", "status_code"},
	)

	StravaRateLimitUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "strava_rate_limit_usage",
			Help: "Strava API rate limit usage",
		},
		[]string{"limit_type", "bucket"},
	)
)

// Pipeline Metrics
var (
	ExportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "export_runs_total",
			Help: "Total number of export runs by outcome and failure kind",
		},
		[]string{"result", "kind"},
	)

	ExportedActivitiesCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "exported_activities_count",
			Help:    "Number of activities written per export run",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)

	RefreshCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refresh_commands_total",
			Help: "Total number of refresh commands triggered from the dashboard",
		},
		[]string{"result"},
	)
)

// Dataset Metrics
var (
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset loads by outcome",
		},
		[]string{"result"},
	)

	DatasetActivities = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_activities",
			Help: "Number of activities in the exported dataset",
		},
	)

	DatasetAgeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_age_seconds",
			Help: "Seconds since the dataset was exported",
		},
	)
)
