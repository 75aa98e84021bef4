package main

import (
	"github.com/fwojciec/imdbtop"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	var filter imdbtop.MovieFilter
	if c.MinRating > 0 {
		filter.MinRating = &c.MinRating
	}

	movies, series, err := loadStored(deps, filter)
	if err != nil {
		return err
	}

	printReports(deps, movies, series)
	return nil
}

func printReports(deps *Dependencies, movies []*imdbtop.Movie, series []*imdbtop.Series) {
	deps.Printer.Movies(movies)
	deps.Printer.Series(series)
	deps.Printer.TopRated(movies)
	deps.Printer.Categories(movies)
	deps.Printer.Summary(imdbtop.Aggregate(imdbtop.ClassifyMovies(movies)), imdbtop.DefaultPageWidth)
}
