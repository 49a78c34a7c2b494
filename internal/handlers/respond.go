package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"strava-dashboard/internal/dataset"
)

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeNotice(w http.ResponseWriter, logger *slog.Logger, status int, level dataset.Level, message string) {
	writeJSON(w, logger, status, dataset.Notice{Level: level, Message: message})
}
