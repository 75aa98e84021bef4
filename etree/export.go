// Package etree implements an XML exporter for imdbtop datasets using etree.
package etree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/imdbtop"
)

// DefaultFileName is the name of the XML file written by Exporter.
const DefaultFileName = "imdbtop.xml"

// Ensure Exporter implements imdbtop.Exporter at compile time.
var _ imdbtop.Exporter = (*Exporter)(nil)

// Exporter writes a dataset as a single XML document.
type Exporter struct {
	path string
}

// NewExporter creates an Exporter writing DefaultFileName into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{path: filepath.Join(dir, DefaultFileName)}
}

// Export writes the XML document and returns its path.
func (e *Exporter) Export(ctx context.Context, ds *imdbtop.Dataset) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := BuildDocument(ds)

	if err := os.MkdirAll(filepath.Dir(e.path), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if err := doc.WriteToFile(e.path); err != nil {
		return nil, fmt.Errorf("writing %s: %w", filepath.Base(e.path), err)
	}
	return []string{e.path}, nil
}

// BuildDocument renders the dataset as:
//
//	<imdbtop>
//	  <movies><movie id=".." year=".." rating=".." categoria="..">Title</movie>...</movies>
//	  <series><serie id=".." year=".." seasons=".." episodes="..">Title</serie>...</series>
//	  <summary><categoria name=".."><year value="..">count</year>...</categoria>...</summary>
//	</imdbtop>
func BuildDocument(ds *imdbtop.Dataset) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("imdbtop")

	movies := root.CreateElement("movies")
	for _, m := range ds.Movies {
		el := movies.CreateElement("movie")
		el.CreateAttr("id", strconv.FormatInt(m.ID, 10))
		el.CreateAttr("year", strconv.Itoa(m.Year))
		el.CreateAttr("rating", strconv.FormatFloat(m.Rating, 'f', -1, 64))
		el.CreateAttr("categoria", string(m.Category()))
		el.SetText(m.Title)
	}

	series := root.CreateElement("series")
	for _, s := range ds.Series {
		el := series.CreateElement("serie")
		el.CreateAttr("id", strconv.FormatInt(s.ID, 10))
		el.CreateAttr("year", strconv.Itoa(s.Year))
		el.CreateAttr("seasons", strconv.Itoa(s.Seasons))
		el.CreateAttr("episodes", strconv.Itoa(s.Episodes))
		el.SetText(s.Title)
	}

	summary := root.CreateElement("summary")
	if ds.Summary != nil {
		years := ds.Summary.Years()
		for _, category := range ds.Summary.Categories() {
			row := summary.CreateElement("categoria")
			row.CreateAttr("name", string(category))
			for i, n := range ds.Summary.Row(category) {
				cell := row.CreateElement("year")
				cell.CreateAttr("value", strconv.Itoa(years[i]))
				cell.SetText(strconv.Itoa(n))
			}
		}
	}

	doc.Indent(2)
	return doc
}
