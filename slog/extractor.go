package slog

import (
	"log/slog"
	"time"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// Ensure LoggingExtractor implements plantscraper.Extractor.
var _ plantscraper.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   plantscraper.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next plantscraper.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractEntity logs the plant and extracted field count and delegates to
// the wrapped extractor.
func (e *LoggingExtractor) ExtractEntity(html string, id plantscraper.Identity) (rec *plantscraper.Record, err error) {
	defer func(begin time.Time) {
		fields := 0
		if rec != nil && rec.Fields != nil {
			fields = len(rec.Fields.Keys())
		}
		e.logger.Info("extract",
			"plant", id.Name,
			"fields", fields,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractEntity(html, id)
}
