package mock

import (
	"context"

	"github.com/fwojciec/imdbtop"
)

var _ imdbtop.MovieService = (*MovieService)(nil)

// MovieService is a mock implementation of imdbtop.MovieService.
type MovieService struct {
	CreateMoviesFn func(ctx context.Context, movies []*imdbtop.Movie) (int, error)
	FindMoviesFn   func(ctx context.Context, filter imdbtop.MovieFilter) ([]*imdbtop.Movie, error)
}

func (s *MovieService) CreateMovies(ctx context.Context, movies []*imdbtop.Movie) (int, error) {
	return s.CreateMoviesFn(ctx, movies)
}

func (s *MovieService) FindMovies(ctx context.Context, filter imdbtop.MovieFilter) ([]*imdbtop.Movie, error) {
	return s.FindMoviesFn(ctx, filter)
}

var _ imdbtop.SeriesService = (*SeriesService)(nil)

// SeriesService is a mock implementation of imdbtop.SeriesService.
type SeriesService struct {
	CreateSeriesFn func(ctx context.Context, series []*imdbtop.Series) (int, error)
	FindSeriesFn   func(ctx context.Context, filter imdbtop.SeriesFilter) ([]*imdbtop.Series, error)
}

func (s *SeriesService) CreateSeries(ctx context.Context, series []*imdbtop.Series) (int, error) {
	return s.CreateSeriesFn(ctx, series)
}

func (s *SeriesService) FindSeries(ctx context.Context, filter imdbtop.SeriesFilter) ([]*imdbtop.Series, error) {
	return s.FindSeriesFn(ctx, filter)
}
