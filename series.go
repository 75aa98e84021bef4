package imdbtop

import (
	"context"
	"fmt"
)

// Series represents a TV series from the Top 250 TV chart.
type Series struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Seasons  int    `json:"seasons"`
	Episodes int    `json:"episodes"`
}

func (*Series) title() {}

// Name returns the series title.
func (s *Series) Name() string { return s.Title }

// Released returns the year the series started.
func (s *Series) Released() int { return s.Year }

func (s *Series) String() string {
	return fmt.Sprintf("%s (%d) - Temporadas: %d, Episódios: %d", s.Title, s.Year, s.Seasons, s.Episodes)
}

// SeriesFromItems converts scraped chart items to series.
// The chart page does not list season or episode counts, so both default to 1.
func SeriesFromItems(items []ChartItem) []*Series {
	series := make([]*Series, 0, len(items))
	for _, item := range items {
		series = append(series, &Series{Title: item.Title, Year: item.Year, Seasons: 1, Episodes: 1})
	}
	return series
}

// SeriesService represents a service for managing stored series.
type SeriesService interface {
	// CreateSeries stores series, silently skipping titles that already exist.
	// Returns the number of series inserted.
	CreateSeries(ctx context.Context, series []*Series) (int, error)

	// FindSeries retrieves series matching the filter, ordered by ID.
	FindSeries(ctx context.Context, filter SeriesFilter) ([]*Series, error)
}

// SeriesFilter represents a filter for FindSeries.
type SeriesFilter struct {
	Title *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
