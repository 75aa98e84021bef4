package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/imdbtop"
	"github.com/fwojciec/imdbtop/etree"
	"github.com/fwojciec/imdbtop/fs"
	"github.com/fwojciec/imdbtop/goquery"
	imdbhttp "github.com/fwojciec/imdbtop/http"
	"github.com/fwojciec/imdbtop/pretty"
	"github.com/fwojciec/imdbtop/rod"
	"github.com/fwojciec/imdbtop/scrape"
	imdbslog "github.com/fwojciec/imdbtop/slog"
	"github.com/fwojciec/imdbtop/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the environment before flags are parsed.
	// Variables that are already set are not overridden. Set before calling Run().
	EnvFile string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher replaces the network fetcher when set. Used for end-to-end testing.
	Fetcher imdbtop.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		_ = godotenv.Load(m.EnvFile)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("imdbtop"),
		kong.Description("Scrape the IMDb Top 250 charts, classify titles by rating and summarize them by year"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(kong.JSON, configPath(args)),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'imdbtop --help' to see available commands")
	}

	if args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}
	if slices.ContainsFunc(args, isHelpFlag) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(cli.Verbose, stderr)
	deps.Logger = logger
	deps.Printer = pretty.NewPrinter(stdout)
	deps.Limit = cli.Limit

	if cli.DB != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cli.DB), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set IMDBTOP_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	deps.Movies = sqlite.NewMovieService(m.DB)
	deps.Series = sqlite.NewSeriesService(m.DB)
	deps.Runs = sqlite.NewRunService(m.DB)
	deps.Extractor = imdbslog.NewLoggingExtractor(goquery.NewChartExtractor(), logger)

	cmd := kongCtx.Command()

	if cmd == "scrape" || cmd == "fetch" {
		fetcher := m.Fetcher
		if fetcher == nil {
			f, err := newFetcher(cli.Globals)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --browser")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer f.Close()
			fetcher = f
		}

		deps.Refresher = &scrape.Refresher{
			Fetcher: imdbslog.NewLoggingFetcher(fetcher, logger),
			Snapshots: fs.NewSnapshotStore(map[imdbtop.Chart]string{
				imdbtop.ChartMovies: cli.MoviesHTML,
				imdbtop.ChartSeries: cli.SeriesHTML,
			}),
			Runs:        deps.Runs,
			RateLimiter: scrape.NewDomainLimiter(scrape.DefaultRequestsPerSecond),
			URLs: map[imdbtop.Chart]string{
				imdbtop.ChartMovies: cli.MoviesURL,
				imdbtop.ChartSeries: cli.SeriesURL,
			},
		}
	}

	switch cmd {
	case "scrape":
		deps.Exporters, err = newExporters(cli.OutputDir, allFormats, logger)
	case "export":
		formats := cli.Export.Format
		if len(formats) == 0 {
			formats = allFormats
		}
		deps.Exporters, err = newExporters(cli.OutputDir, formats, logger)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", imdbtop.ErrorMessage(err))
		return err
	}

	return kongCtx.Run(deps)
}

func isHelpFlag(arg string) bool {
	return arg == "--help" || arg == "-h"
}

// configPath returns the value of --config in args, or the flag default.
// The config file has to be known before kong parses the flags it provides.
func configPath(args []string) string {
	for i, arg := range args {
		if value, ok := strings.CutPrefix(arg, "--config="); ok {
			return value
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return "imdbtop.json"
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

func newFetcher(g Globals) (imdbtop.Fetcher, error) {
	if g.Browser {
		return rod.NewFetcher(
			rod.WithTimeout(g.Timeout),
			rod.WithWaitSelector(goquery.SummaryItemSelector),
		)
	}
	return imdbhttp.NewFetcher(imdbhttp.WithTimeout(g.Timeout)), nil
}

var allFormats = []string{"csv", "json", "xml"}

// newExporters builds one exporter per backend for the requested formats.
// CSV and JSON share the flat file exporter; XML uses etree.
func newExporters(dir string, formats []string, logger *slog.Logger) ([]imdbtop.Exporter, error) {
	var flat []fs.Format
	var xml bool
	for _, format := range formats {
		switch strings.ToLower(strings.TrimSpace(format)) {
		case "csv":
			flat = append(flat, fs.FormatCSV)
		case "json":
			flat = append(flat, fs.FormatJSON)
		case "xml":
			xml = true
		default:
			return nil, imdbtop.Errorf(imdbtop.EINVALID, "unknown export format %q (want csv, json or xml)", format)
		}
	}

	var exporters []imdbtop.Exporter
	if len(flat) > 0 {
		exporters = append(exporters, imdbslog.NewLoggingExporter(fs.NewExporter(dir, flat...), logger))
	}
	if xml {
		exporters = append(exporters, imdbslog.NewLoggingExporter(etree.NewExporter(dir), logger))
	}
	return exporters, nil
}
