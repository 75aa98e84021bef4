package main

import (
	"fmt"

	"github.com/fwojciec/imdbtop"
	"github.com/fwojciec/imdbtop/scrape"
)

// chartLabels names each chart in user-facing messages.
var chartLabels = map[imdbtop.Chart]string{
	imdbtop.ChartMovies: "filmes",
	imdbtop.ChartSeries: "séries",
}

// Run executes the scrape command: refresh both charts, extract and store
// their titles, then print every report and export the stored tables.
// The movies chart is required; the series chart is optional.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	outcomes := deps.Refresher.RefreshAll(deps.Ctx, imdbtop.ChartMovies, imdbtop.ChartSeries)
	moviesHTML, err := reportRefresh(deps, outcomes[0], true)
	if err != nil {
		return err
	}
	seriesHTML, _ := reportRefresh(deps, outcomes[1], false)

	movieItems, err := deps.Extractor.Extract(moviesHTML, deps.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(err))
		return err
	}

	var seriesItems []imdbtop.ChartItem
	if seriesHTML != "" {
		if seriesItems, err = deps.Extractor.Extract(seriesHTML, deps.Limit); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", imdbtop.ErrorMessage(err))
			seriesItems = nil
		}
	}

	deps.Printer.ChartPreview(chartLabels[imdbtop.ChartMovies], imdbtop.ClassifyItems(movieItems))
	deps.Printer.ChartPreview(chartLabels[imdbtop.ChartSeries], imdbtop.ClassifyItems(seriesItems))

	movies := imdbtop.MoviesFromItems(movieItems)
	series := imdbtop.SeriesFromItems(seriesItems)
	deps.Printer.Catalog(imdbtop.BuildCatalog(movies, series))

	insertedMovies, err := deps.Movies.CreateMovies(deps.Ctx, movies)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(err))
		return err
	}
	insertedSeries, err := deps.Series.CreateSeries(deps.Ctx, series)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Inseridos %d filmes e %d séries novos no banco.\n\n", insertedMovies, insertedSeries)

	storedMovies, storedSeries, err := loadStored(deps, imdbtop.MovieFilter{})
	if err != nil {
		return err
	}

	printReports(deps, storedMovies, storedSeries)

	if err := exportDataset(deps, storedMovies, storedSeries); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, "Processo concluído.")
	return nil
}

// reportRefresh prints how a chart was refreshed and returns its HTML.
// A failed required chart is an error; a failed optional chart is a warning
// and yields empty HTML.
func reportRefresh(deps *Dependencies, outcome scrape.Outcome, required bool) (string, error) {
	if outcome.Err != nil {
		if required {
			fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(outcome.Err))
			return "", outcome.Err
		}
		fmt.Fprintf(deps.Stderr, "warning: %s. Continuando apenas com filmes.\n", imdbtop.ErrorMessage(outcome.Err))
		return "", outcome.Err
	}

	result := outcome.Result
	label := chartLabels[result.Chart]
	switch result.Source {
	case imdbtop.SourceNetwork:
		fmt.Fprintf(deps.Stdout, "HTML de %s atualizado a partir da web.\n", label)
	case imdbtop.SourceCache:
		deps.Logger.Warn("fetch failed, using snapshot", "chart", result.Chart, "err", result.FetchErr)
		fmt.Fprintf(deps.Stderr, "Não foi possível atualizar o HTML de %s a partir da web: %v\n", label, result.FetchErr)
		fmt.Fprintf(deps.Stdout, "Usando o HTML local de %s.\n", label)
	}
	return result.HTML, nil
}

// loadStored reads the stored movies matching filter and every stored series.
func loadStored(deps *Dependencies, filter imdbtop.MovieFilter) ([]*imdbtop.Movie, []*imdbtop.Series, error) {
	movies, err := deps.Movies.FindMovies(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(err))
		return nil, nil, err
	}
	series, err := deps.Series.FindSeries(deps.Ctx, imdbtop.SeriesFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(err))
		return nil, nil, err
	}
	return movies, series, nil
}
