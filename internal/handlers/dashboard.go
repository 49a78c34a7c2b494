package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"strava-dashboard/internal/config"
	"strava-dashboard/internal/dataset"
	"strava-dashboard/internal/metrics"
)

// DashboardHandler serves the dashboard view model built from the export
type DashboardHandler struct {
	dataPath string
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(cfg *config.Settings) *DashboardHandler {
	return &DashboardHandler{
		dataPath: cfg.DataPath,
		location: cfg.HomeLocation(),
		logger:   slog.Default(),
		now:      time.Now,
	}
}

// HandleDashboard handles GET /api/dashboard
// Query parameters:
//   - year: ISO year (default: latest year in the dataset)
//   - month: 1-12 (default: latest month of the selected year)
//   - sport: repeatable sport label (default: every sport)
//
// Dataset problems are reported as a JSON notice and never as a server error.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	year, err := optionalInt(query.Get("year"))
	if err != nil {
		http.Error(w, "Invalid year parameter", http.StatusBadRequest)
		return
	}
	month, err := optionalInt(query.Get("month"))
	if err != nil || (month != nil && (*month < 1 || *month > 12)) {
		http.Error(w, "Month must be between 1 and 12", http.StatusBadRequest)
		return
	}

	snap, err := dataset.Load(h.dataPath)
	if err != nil {
		metrics.DatasetLoadsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		if errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("Dataset not found", "path", h.dataPath)
			writeNotice(w, h.logger, http.StatusNotFound, dataset.LevelWarning, fmt.Sprintf(
				"Data file not found at '%s'. Export your Strava data first, for example: "+
					"strava-dashboard export --out %s --per-page 200", h.dataPath, h.dataPath))
			return
		}
		h.logger.Warn("Dataset unreadable", "path", h.dataPath, "error", err)
		writeNotice(w, h.logger, http.StatusUnprocessableEntity, dataset.LevelError,
			fmt.Sprintf("Failed to read or parse '%s': %v", h.dataPath, err))
		return
	}
	metrics.DatasetLoadsTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	frame := dataset.Normalize(snap.Activities, h.location)
	q, _ := frame.DefaultQuery()
	if year != nil && *year != q.Year {
		q = q.WithYear(*year)
		if months := frame.Months(*year); len(months) > 0 {
			q = q.WithMonth(months[len(months)-1].Number)
		}
	}
	if month != nil {
		q = q.WithMonth(*month)
	}
	if sports := query["sport"]; len(sports) > 0 {
		q = q.WithSports(sports...)
	}

	h.logger.Info("Dashboard request", "year", q.Year, "month", q.Month, "sports", len(q.Sports),
		"activities", len(frame.Rows))

	writeJSON(w, h.logger, http.StatusOK, dataset.BuildView(frame, q, h.now()))
}

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
