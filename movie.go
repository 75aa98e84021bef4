package imdbtop

import (
	"context"
	"fmt"
	"slices"
)

// Movie represents a movie from the Top 250 movies chart.
type Movie struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

func (*Movie) title() {}

// Name returns the movie title.
func (m *Movie) Name() string { return m.Title }

// Released returns the release year.
func (m *Movie) Released() int { return m.Year }

// Category returns the rating category of the movie.
func (m *Movie) Category() Category { return Classify(m.Rating) }

func (m *Movie) String() string {
	return fmt.Sprintf("%s (%d) - Nota: %.1f", m.Title, m.Year, m.Rating)
}

// MoviesFromItems converts scraped chart items to movies.
func MoviesFromItems(items []ChartItem) []*Movie {
	movies := make([]*Movie, 0, len(items))
	for _, item := range items {
		movies = append(movies, &Movie{Title: item.Title, Year: item.Year, Rating: item.Rating})
	}
	return movies
}

// TopRated returns up to n movies rated strictly above threshold,
// best first. Movies with equal ratings keep their input order.
func TopRated(movies []*Movie, threshold float64, n int) []*Movie {
	var top []*Movie
	for _, m := range movies {
		if m.Rating > threshold {
			top = append(top, m)
		}
	}
	slices.SortStableFunc(top, func(a, b *Movie) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}

// MovieService represents a service for managing stored movies.
type MovieService interface {
	// CreateMovies stores movies, silently skipping titles that already exist.
	// Returns the number of movies inserted. Inserted movies get their ID set.
	CreateMovies(ctx context.Context, movies []*Movie) (int, error)

	// FindMovies retrieves movies matching the filter, ordered by ID.
	FindMovies(ctx context.Context, filter MovieFilter) ([]*Movie, error)
}

// MovieFilter represents a filter for FindMovies.
type MovieFilter struct {
	Title     *string  `json:"title"`
	MinRating *float64 `json:"minRating"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
