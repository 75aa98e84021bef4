package imdbtop

import (
	"context"
	"time"
)

// RunSource tells where the HTML of a run came from.
type RunSource string

// RunSource constants.
const (
	SourceNetwork RunSource = "network"
	SourceCache   RunSource = "cache"
)

// Run records one snapshot refresh of a chart.
type Run struct {
	ID          string    `json:"id"`
	Chart       Chart     `json:"chart"`
	Source      RunSource `json:"source"`
	ContentHash string    `json:"contentHash"`
	Bytes       int       `json:"bytes"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Chart != ChartMovies && r.Chart != ChartSeries {
		return Errorf(EINVALID, "run chart must be %q or %q", ChartMovies, ChartSeries)
	}
	if r.Source != SourceNetwork && r.Source != SourceCache {
		return Errorf(EINVALID, "run source must be %q or %q", SourceNetwork, SourceCache)
	}
	return nil
}

// RunService represents a service for recording snapshot refreshes.
type RunService interface {
	// CreateRun records a run. ID, ContentHash and FetchedAt are assigned
	// from the given HTML.
	CreateRun(ctx context.Context, run *Run, html string) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Chart *Chart `json:"chart"`

	Limit int `json:"limit"`
}
