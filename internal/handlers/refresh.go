package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"strava-dashboard/internal/metrics"
	"strava-dashboard/internal/runner"
)

// RefreshResponse reports the outcome of an export run
type RefreshResponse struct {
	ExitCode   int    `json:"exit_code"`
	Success    bool   `json:"success"`
	OutputTail string `json:"output_tail"`
}

// RefreshHandler triggers the export pipeline as an external process
type RefreshHandler struct {
	runner  runner.CommandRunner
	command runner.Command
	timeout time.Duration
	logger  *slog.Logger

	// one refresh at a time
	mu sync.Mutex
}

// NewRefreshHandler creates a new refresh handler
func NewRefreshHandler(r runner.CommandRunner, cmd runner.Command, timeout time.Duration) *RefreshHandler {
	return &RefreshHandler{
		runner:  r,
		command: cmd,
		timeout: timeout,
		logger:  slog.Default(),
	}
}

// HandleRefresh handles POST /api/refresh. The export's exit status and
// output tail are returned; a failed export is reported with status 500.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.mu.TryLock() {
		http.Error(w, "Refresh already running", http.StatusConflict)
		return
	}
	defer h.mu.Unlock()

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	h.logger.Info("Refresh requested", "command", h.command.String())

	res, err := h.runner.Run(ctx, h.command)
	if err != nil {
		metrics.RefreshCommandsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		h.logger.Error("Refresh failed", "error", err)

		resp := RefreshResponse{ExitCode: -1, OutputTail: err.Error()}
		if res != nil {
			resp.ExitCode = res.ExitCode
			if tail := res.OutputTail(); tail != "" {
				resp.OutputTail = tail
			}
		}
		writeJSON(w, h.logger, http.StatusInternalServerError, resp)
		return
	}

	resp := RefreshResponse{
		ExitCode:   res.ExitCode,
		Success:    res.Success(),
		OutputTail: res.OutputTail(),
	}
	if !resp.Success {
		metrics.RefreshCommandsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		h.logger.Warn("Export exited with failure", "exit_code", res.ExitCode)
		writeJSON(w, h.logger, http.StatusInternalServerError, resp)
		return
	}

	metrics.RefreshCommandsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	writeJSON(w, h.logger, http.StatusOK, resp)
}
