package metrics

import (
	"context"
	"log/slog"
	"time"
)

// DatasetStats is implemented by anything that can report on the exported
// dataset without rendering it
type DatasetStats interface {
	Stats() (count int, exportedAt time.Time, err error)
}

// StartDatasetCollector periodically records the size and age of the
// exported dataset. It blocks until ctx is cancelled.
func StartDatasetCollector(ctx context.Context, src DatasetStats, interval time.Duration) {
	logger := slog.Default()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect once immediately
	collectDatasetStats(src, logger)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Dataset collector stopping")
			return
		case <-ticker.C:
			collectDatasetStats(src, logger)
		}
	}
}

func collectDatasetStats(src DatasetStats, logger *slog.Logger) {
	count, exportedAt, err := src.Stats()
	if err != nil {
		logger.Debug("Dataset stats unavailable", "error", err)
		return
	}

	DatasetActivities.Set(float64(count))
	if !exportedAt.IsZero() {
		DatasetAgeSeconds.Set(time.Since(exportedAt).Seconds())
	}
}
