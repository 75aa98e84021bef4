package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/imdbtop"
)

// Format is a flat file export format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Ensure Exporter implements imdbtop.Exporter at compile time.
var _ imdbtop.Exporter = (*Exporter)(nil)

// Exporter writes movies, series and the category summary as CSV and/or
// JSON files into a directory.
type Exporter struct {
	dir     string
	formats []Format
}

// NewExporter creates an Exporter writing to dir.
// With no formats, both CSV and JSON are written.
func NewExporter(dir string, formats ...Format) *Exporter {
	if len(formats) == 0 {
		formats = []Format{FormatCSV, FormatJSON}
	}
	return &Exporter{dir: dir, formats: formats}
}

type movieRecord struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Rating    float64 `json:"rating"`
	Categoria string  `json:"categoria"`
}

type summaryRecord struct {
	Categoria  string `json:"categoria"`
	Year       int    `json:"year"`
	Quantidade int    `json:"quantidade"`
}

// Export writes every file of the configured formats. Failures are collected
// so that one unwritable file does not prevent the others.
func (e *Exporter) Export(ctx context.Context, ds *imdbtop.Dataset) ([]string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []string
	var errs []error
	write := func(name string, fn func(path string) error) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			return
		}
		path := filepath.Join(e.dir, name)
		if err := fn(path); err != nil {
			errs = append(errs, fmt.Errorf("writing %s: %w", name, err))
			return
		}
		written = append(written, path)
	}

	for _, format := range e.formats {
		switch format {
		case FormatCSV:
			write("movies.csv", func(p string) error { return writeCSV(p, movieRows(ds.Movies)) })
			write("series.csv", func(p string) error { return writeCSV(p, seriesRows(ds.Series)) })
			write("summary.csv", func(p string) error { return writeCSV(p, summaryRows(ds.Summary)) })
		case FormatJSON:
			write("movies.json", func(p string) error { return writeJSON(p, movieRecords(ds.Movies)) })
			write("series.json", func(p string) error { return writeJSON(p, seriesRecords(ds.Series)) })
			write("summary.json", func(p string) error { return writeJSON(p, summaryRecords(ds.Summary)) })
		default:
			errs = append(errs, imdbtop.Errorf(imdbtop.EINVALID, "unknown export format %q", format))
		}
	}

	return written, errors.Join(errs...)
}

func movieRows(movies []*imdbtop.Movie) [][]string {
	rows := [][]string{{"id", "title", "year", "rating", "categoria"}}
	for _, m := range movies {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			strconv.Itoa(m.Year),
			formatRating(m.Rating),
			string(m.Category()),
		})
	}
	return rows
}

func seriesRows(series []*imdbtop.Series) [][]string {
	rows := [][]string{{"id", "title", "year", "seasons", "episodes"}}
	for _, s := range series {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Title,
			strconv.Itoa(s.Year),
			strconv.Itoa(s.Seasons),
			strconv.Itoa(s.Episodes),
		})
	}
	return rows
}

// summaryRows lays the table out as in the terminal: one row per category,
// one column per year.
func summaryRows(table *imdbtop.CategoryYearTable) [][]string {
	header := []string{"categoria"}
	if table == nil {
		return [][]string{header}
	}
	for _, year := range table.Years() {
		header = append(header, strconv.Itoa(year))
	}
	rows := [][]string{header}
	for _, category := range table.Categories() {
		row := []string{string(category)}
		for _, n := range table.Row(category) {
			row = append(row, strconv.Itoa(n))
		}
		rows = append(rows, row)
	}
	return rows
}

func movieRecords(movies []*imdbtop.Movie) []movieRecord {
	records := make([]movieRecord, 0, len(movies))
	for _, m := range movies {
		records = append(records, movieRecord{
			ID:        m.ID,
			Title:     m.Title,
			Year:      m.Year,
			Rating:    m.Rating,
			Categoria: string(m.Category()),
		})
	}
	return records
}

func seriesRecords(series []*imdbtop.Series) []*imdbtop.Series {
	if series == nil {
		return []*imdbtop.Series{}
	}
	return series
}

// summaryRecords flattens the table to one record per cell, zeros included.
func summaryRecords(table *imdbtop.CategoryYearTable) []summaryRecord {
	records := []summaryRecord{}
	if table == nil {
		return records
	}
	for _, category := range table.Categories() {
		for _, year := range table.Years() {
			records = append(records, summaryRecord{
				Categoria:  string(category),
				Year:       year,
				Quantidade: table.Count(category, year),
			})
		}
	}
	return records
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
