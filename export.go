package imdbtop

import "context"

// Dataset is everything written by an export.
type Dataset struct {
	Movies  []*Movie
	Series  []*Series
	Summary *CategoryYearTable
}

// Exporter writes a dataset to flat files.
type Exporter interface {
	// Export writes the dataset and returns the paths written.
	// A failure on one file does not prevent the others from being written;
	// all failures are returned joined.
	Export(ctx context.Context, ds *Dataset) ([]string, error)
}
