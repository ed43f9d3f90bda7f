package slog

import (
	"context"
	"log/slog"
	"time"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// Ensure LoggingGuideSource implements plantscraper.GuideSource.
var _ plantscraper.GuideSource = (*LoggingGuideSource)(nil)

// LoggingGuideSource wraps a GuideSource with debug logging.
type LoggingGuideSource struct {
	next   plantscraper.GuideSource
	logger *slog.Logger
}

// NewLoggingGuideSource creates a new LoggingGuideSource.
func NewLoggingGuideSource(next plantscraper.GuideSource, logger *slog.Logger) *LoggingGuideSource {
	return &LoggingGuideSource{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped source and logs the operation.
func (s *LoggingGuideSource) DiscoverURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("guide discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL)
}
