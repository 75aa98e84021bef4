// Package pretty renders reports as terminal tables using go-pretty.
package pretty

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fwojciec/imdbtop"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Preview sizes used by the reports.
const (
	TitlePreviewSize    = 10
	DetailedPreviewSize = 5
	TablePreviewSize    = 5
	TopRatedSize        = 5
	CategoryPreviewSize = 10

	// TopRatedThreshold is the rating a movie must exceed to be listed as top rated.
	TopRatedThreshold = 9.0
)

// Printer writes report tables to w.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func newTable() table.Writer {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault

	t := table.NewWriter()
	t.SetStyle(style)
	return t
}

// alignRight right-aligns the given 1-based columns.
func alignRight(t table.Writer, columns ...int) {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, n := range columns {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignRight})
	}
	t.SetColumnConfigs(configs)
}

// render prints the heading on its own line followed by the table.
// go-pretty wraps titles to the table width, so the heading is kept outside.
func (p *Printer) render(heading string, t table.Writer) {
	fmt.Fprintln(p.w, text.Bold.Sprint(heading))
	fmt.Fprintln(p.w, t.Render())
	fmt.Fprintln(p.w)
}

func (p *Printer) notice(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n\n", args...)
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// ChartPreview prints the first titles of a chart, then the first few with
// year, rating and category, then how many titles fall in each category.
// label names the chart in the headings, e.g. "filmes".
func (p *Printer) ChartPreview(label string, items []imdbtop.ClassifiedItem) {
	if len(items) == 0 {
		p.notice("Nenhum título de %s carregado do IMDb Top 250.", label)
		return
	}

	heading := fmt.Sprintf("Primeiros %d títulos de %s", TitlePreviewSize, label)
	t := newTable()
	t.AppendHeader(table.Row{"Posição", "Título"})
	alignRight(t, 1)
	for i, item := range items[:min(TitlePreviewSize, len(items))] {
		t.AppendRow(table.Row{i + 1, item.Title})
	}
	p.render(heading, t)

	heading = fmt.Sprintf("Primeiros %d %s com título, ano e nota", DetailedPreviewSize, label)
	t = newTable()
	t.AppendHeader(table.Row{"Posição", "Título", "Ano", "Nota", "Categoria"})
	alignRight(t, 1, 3, 4)
	for i, item := range items[:min(DetailedPreviewSize, len(items))] {
		t.AppendRow(table.Row{i + 1, item.Title, item.Year, formatRating(item.Rating), string(item.Category)})
	}
	p.render(heading, t)

	counts := make(map[imdbtop.Category]int)
	for _, item := range items {
		counts[item.Category]++
	}
	t = newTable()
	t.AppendHeader(table.Row{"Categoria", "Títulos"})
	alignRight(t, 2)
	for _, category := range imdbtop.Categories {
		t.AppendRow(table.Row{string(category), counts[category]})
	}
	p.render(fmt.Sprintf("Distribuição de %s por categoria", label), t)
}

// Catalog prints every title with its kind and description.
func (p *Printer) Catalog(catalog []imdbtop.Title) {
	if len(catalog) == 0 {
		p.notice("Catálogo vazio.")
		return
	}

	heading := "Catálogo completo de filmes e séries"
	t := newTable()
	t.AppendHeader(table.Row{"Tipo", "Título", "Ano", "Detalhes"})
	alignRight(t, 3)
	for _, title := range catalog {
		t.AppendRow(table.Row{imdbtop.TitleKind(title), title.Name(), title.Released(), title.String()})
	}
	p.render(heading, t)
}

// Movies prints the first stored movies as they are in the database.
func (p *Printer) Movies(movies []*imdbtop.Movie) {
	if len(movies) == 0 {
		p.notice("Tabela de movies está vazia.")
		return
	}

	heading := fmt.Sprintf("Primeiras %d linhas de movies", TablePreviewSize)
	t := newTable()
	t.AppendHeader(table.Row{"id", "title", "year", "rating"})
	alignRight(t, 1, 3, 4)
	for _, m := range movies[:min(TablePreviewSize, len(movies))] {
		t.AppendRow(table.Row{m.ID, m.Title, m.Year, formatRating(m.Rating)})
	}
	p.render(heading, t)
}

// Series prints the first stored series as they are in the database.
func (p *Printer) Series(series []*imdbtop.Series) {
	if len(series) == 0 {
		p.notice("Tabela de series está vazia.")
		return
	}

	heading := fmt.Sprintf("Primeiras %d linhas de series", TablePreviewSize)
	t := newTable()
	t.AppendHeader(table.Row{"id", "title", "year", "seasons", "episodes"})
	alignRight(t, 1, 3, 4, 5)
	for _, s := range series[:min(TablePreviewSize, len(series))] {
		t.AppendRow(table.Row{s.ID, s.Title, s.Year, s.Seasons, s.Episodes})
	}
	p.render(heading, t)
}

// TopRated prints the best movies rated above TopRatedThreshold.
func (p *Printer) TopRated(movies []*imdbtop.Movie) {
	if len(movies) == 0 {
		p.notice("Nenhum filme carregado para análise.")
		return
	}

	heading := fmt.Sprintf("Top %d filmes com nota maior que %s", TopRatedSize, formatRating(TopRatedThreshold))
	t := newTable()
	t.AppendHeader(table.Row{"Título", "Ano", "Nota"})
	alignRight(t, 2, 3)
	for _, m := range imdbtop.TopRated(movies, TopRatedThreshold, TopRatedSize) {
		t.AppendRow(table.Row{m.Title, m.Year, formatRating(m.Rating)})
	}
	p.render(heading, t)
}

// Categories prints title, rating and category of the first movies.
func (p *Printer) Categories(movies []*imdbtop.Movie) {
	if len(movies) == 0 {
		p.notice("Nenhum filme disponível para exibir categoria.")
		return
	}

	heading := "Título, nota e categoria dos primeiros filmes"
	t := newTable()
	t.AppendHeader(table.Row{"Título", "Nota", "Categoria"})
	alignRight(t, 2)
	for _, c := range imdbtop.ClassifyMovies(movies[:min(CategoryPreviewSize, len(movies))]) {
		t.AppendRow(table.Row{c.Title, formatRating(c.Rating), string(c.Category)})
	}
	p.render(heading, t)
}

// Summary prints the category by year table, split into pages of at most
// width year columns so that wide tables fit the terminal.
func (p *Printer) Summary(summary *imdbtop.CategoryYearTable, width int) {
	if summary == nil || summary.Empty() {
		p.notice("Não foi possível construir o resumo por categoria.")
		return
	}

	pages := summary.YearPages(width)
	for i, years := range pages {
		heading := "Resumo de filmes por categoria e ano"
		if len(pages) > 1 {
			heading = fmt.Sprintf("%s (%d/%d)", heading, i+1, len(pages))
		}
		t := newTable()

		header := table.Row{"Categoria"}
		columns := make([]int, 0, len(years))
		for j, year := range years {
			header = append(header, strconv.Itoa(year))
			columns = append(columns, j+2)
		}
		t.AppendHeader(header)
		alignRight(t, columns...)

		for _, category := range summary.Categories() {
			row := table.Row{string(category)}
			for _, year := range years {
				row = append(row, summary.Count(category, year))
			}
			t.AppendRow(row)
		}
		p.render(heading, t)
	}
	p.notice("Total de filmes no resumo: %d", summary.Total())
}
