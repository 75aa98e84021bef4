package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/imdbtop"
)

// Ensure LoggingExporter implements imdbtop.Exporter.
var _ imdbtop.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with debug logging.
type LoggingExporter struct {
	next   imdbtop.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next imdbtop.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter and logs the written files.
func (e *LoggingExporter) Export(ctx context.Context, ds *imdbtop.Dataset) (paths []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("export",
			"files", len(paths),
			"paths", paths,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(ctx, ds)
}
