package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/imdbtop"
)

// Ensure LoggingExtractor implements imdbtop.ChartExtractor.
var _ imdbtop.ChartExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ChartExtractor with debug logging.
type LoggingExtractor struct {
	next   imdbtop.ChartExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next imdbtop.ChartExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs how many items survived.
func (e *LoggingExtractor) Extract(html string, limit int) (items []imdbtop.ChartItem, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"limit", limit,
			"items", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, limit)
}
