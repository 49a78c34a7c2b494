package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"strava-dashboard/internal/database"
	"strava-dashboard/internal/export"
)

// HealthHandler reports liveness and whether an export is present
type HealthHandler struct {
	dataPath string
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dataPath string) *HealthHandler {
	return &HealthHandler{dataPath: dataPath, logger: slog.Default()}
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	_, err := os.Stat(h.dataPath)
	body := map[string]any{
		"status":       "ok",
		"dataset_path": h.dataPath,
		"dataset":      err == nil,
	}

	if err == nil && export.FormatFor(h.dataPath) == export.FormatSQLite {
		archive, archiveErr := h.checkArchive()
		if archiveErr != nil {
			h.logger.Warn("Archive health check failed", "path", h.dataPath, "error", archiveErr)
			body["status"] = "degraded"
			body["archive_error"] = archiveErr.Error()
		} else {
			body["archive"] = archive
		}
	}

	writeJSON(w, h.logger, http.StatusOK, body)
}

// checkArchive summarises the latest run of a sqlite dataset
func (h *HealthHandler) checkArchive() (map[string]any, error) {
	db, err := database.OpenReadOnly(h.dataPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.Health(); err != nil {
		return nil, err
	}
	run, err := db.LatestExportRun()
	if err != nil {
		return nil, err
	}
	if run == nil {
		return map[string]any{"run_id": nil}, nil
	}
	return map[string]any{
		"run_id":         run.RunID,
		"exported_at":    run.ExportedAt.Format(time.RFC3339),
		"activity_count": run.ActivityCount,
	}, nil
}
