package mock

import (
	"context"

	"github.com/fwojciec/imdbtop"
)

var _ imdbtop.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of imdbtop.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, ds *imdbtop.Dataset) ([]string, error)
}

func (e *Exporter) Export(ctx context.Context, ds *imdbtop.Dataset) ([]string, error) {
	return e.ExportFn(ctx, ds)
}
