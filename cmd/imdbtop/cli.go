package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/imdbtop"
	"github.com/fwojciec/imdbtop/pretty"
	"github.com/fwojciec/imdbtop/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Printer *pretty.Printer

	Refresher *scrape.Refresher
	Extractor imdbtop.ChartExtractor
	Movies    imdbtop.MovieService
	Series    imdbtop.SeriesService
	Runs      imdbtop.RunService
	Exporters []imdbtop.Exporter

	// Limit is the maximum number of titles extracted per chart.
	Limit int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Scrape ScrapeCmd `cmd:"" help:"Refresh charts, store titles, print reports and export files"`
	Fetch  FetchCmd  `cmd:"" help:"Refresh the local chart snapshots only"`
	Report ReportCmd `cmd:"" help:"Print reports from the stored titles"`
	Export ExportCmd `cmd:"" help:"Export the stored titles to files"`
	Runs   RunsCmd   `cmd:"" help:"List recent snapshot refreshes"`
}

// Globals are flags shared by every command. Each can also be set in the
// JSON config file under its snake_case name.
type Globals struct {
	MoviesURL  string        `name:"movies-url" env:"IMDBTOP_MOVIES_URL" default:"https://www.imdb.com/chart/top/" help:"Top 250 movies chart URL"`
	SeriesURL  string        `name:"series-url" env:"IMDBTOP_SERIES_URL" default:"https://www.imdb.com/chart/toptv/" help:"Top 250 TV chart URL"`
	Limit      int           `env:"IMDBTOP_LIMIT" default:"250" help:"Maximum titles extracted per chart"`
	MoviesHTML string        `name:"movies-html" default:"data/imdb_top_250_movies.html" help:"Movies chart snapshot path"`
	SeriesHTML string        `name:"series-html" default:"data/imdb_top_250_tv.html" help:"TV chart snapshot path"`
	DB         string        `name:"db" env:"IMDBTOP_DB" default:"data/imdb.db" help:"SQLite database path"`
	OutputDir  string        `name:"output-dir" default:"data" help:"Directory for exported files"`
	Timeout    time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Browser    bool          `help:"Fetch with headless Chrome instead of plain HTTP"`
	Verbose    bool          `short:"v" help:"Log progress to stderr"`
	Config     string        `default:"imdbtop.json" help:"JSON config file"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct{}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct{}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	MinRating float64 `name:"min-rating" help:"Only report movies rated at least this (0 reports all)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format []string `short:"f" help:"Formats to write: csv, json or xml (repeatable, default all)"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Chart string `help:"Only show runs of this chart (movies or series)"`
	Last  int    `short:"n" default:"10" help:"Number of runs to show"`
}
