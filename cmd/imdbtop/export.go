package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/imdbtop"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	movies, series, err := loadStored(deps, imdbtop.MovieFilter{})
	if err != nil {
		return err
	}

	return exportDataset(deps, movies, series)
}

// exportDataset runs every exporter even when one fails, printing each file
// written, and returns the joined failures.
func exportDataset(deps *Dependencies, movies []*imdbtop.Movie, series []*imdbtop.Series) error {
	ds := &imdbtop.Dataset{
		Movies:  movies,
		Series:  series,
		Summary: imdbtop.Aggregate(imdbtop.ClassifyMovies(movies)),
	}

	var errs []error
	for _, exporter := range deps.Exporters {
		paths, err := exporter.Export(deps.Ctx, ds)
		for _, path := range paths {
			fmt.Fprintf(deps.Stdout, "Arquivo salvo: %s\n", path)
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
