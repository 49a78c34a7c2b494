package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"strava-dashboard/internal/config"
	"strava-dashboard/internal/dataset"
	"strava-dashboard/internal/handlers"
	"strava-dashboard/internal/metrics"
	"strava-dashboard/internal/middleware"
	"strava-dashboard/internal/runner"
	"strava-dashboard/internal/strava"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API",
		Long: `Serve the dashboard view model over HTTP:

  GET  /api/dashboard   aggregates for ?year=&month=&sport=
  POST /api/refresh     run the export again and report its output
  GET  /health          liveness

Configuration is read from the environment (HOST, PORT, DATA_PATH,
HOME_TIMEZONE, LOG_LEVEL, METRICS_ENABLED, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSettings()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

func newServerLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// refreshCommand re-invokes this binary's export subcommand
func refreshCommand(cfg *config.Settings) (runner.Command, error) {
	exe, err := os.Executable()
	if err != nil {
		return runner.Command{}, fmt.Errorf("failed to locate executable: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return runner.Command{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	return runner.Command{
		Path: exe,
		Args: []string{
			"export",
			"--out", cfg.DataPath,
			"--per-page", strconv.Itoa(strava.MaxPerPage),
			"--timeout", cfg.HTTPTimeout.String(),
		},
		Dir: wd,
	}, nil
}

func newRouter(cfg *config.Settings, logger *slog.Logger, refresh *handlers.RefreshHandler) http.Handler {
	dashboardHandler := handlers.NewDashboardHandler(cfg)
	healthHandler := handlers.NewHealthHandler(cfg.DataPath)

	route := func(endpoint string, h http.HandlerFunc, extra ...func(http.Handler) http.Handler) http.Handler {
		chain := []func(http.Handler) http.Handler{
			middleware.Recover(logger),
			middleware.AccessLog(logger),
			middleware.CORS(cfg.CORSAllowedOrigins),
			middleware.Metrics(endpoint),
		}
		return middleware.Chain(h, append(chain, extra...)...)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/dashboard", route(metrics.EndpointDashboard, dashboardHandler.HandleDashboard))
	// refresh spends the athlete's credentials, so foreign pages may not trigger it
	mux.Handle("/api/refresh", route(metrics.EndpointRefresh, refresh.HandleRefresh,
		middleware.OriginGuard(cfg.CORSAllowedOrigins)))
	mux.Handle("/health", route(metrics.EndpointHealth, healthHandler.HandleHealth))
	return mux
}

func runServer(ctx context.Context, cfg *config.Settings) error {
	logger := newServerLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	logger.Info("Starting strava-dashboard server",
		"host", cfg.Host,
		"port", cfg.Port,
		"data_path", cfg.DataPath,
		"home_timezone", cfg.HomeTimezone,
		"log_level", cfg.LogLevel)

	cmd, err := refreshCommand(cfg)
	if err != nil {
		return err
	}
	refreshHandler := handlers.NewRefreshHandler(runner.ExecRunner{Logger: logger}, cmd, cfg.RefreshTimeout)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     newRouter(cfg, logger, refreshHandler),
		ReadTimeout: 15 * time.Second,
		// a refresh holds the response open until the export finishes
		WriteTimeout: cfg.RefreshTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start metrics server and dataset collector if enabled
	var metricsServer *http.Server
	if cfg.MetricsEnabled {
		go func() {
			logger.Info("Starting dataset collector")
			metrics.StartDatasetCollector(ctx, dataset.Source{Path: cfg.DataPath}, 30*time.Second)
		}()

		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())

		metricsAddr := fmt.Sprintf("%s:%d", cfg.MetricsHost, cfg.MetricsPort)
		metricsServer = &http.Server{
			Addr:    metricsAddr,
			Handler: metricsMux,
		}

		go func() {
			logger.Info("Metrics server listening", "addr", metricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server shutdown failed", "error", err)
		}
	}

	logger.Info("Server stopped")
	return nil
}
