// Package goquery implements HTML parsing for IMDb chart pages using goquery.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/imdbtop"
)

// SummaryItemSelector matches one entry of an IMDb chart list.
const SummaryItemSelector = "li.ipc-metadata-list-summary-item"

const (
	metadataSelector = `span[class*="cli-title-metadata-item"]`
	ratingSelector   = "span.ipc-rating-star--rating"
)

// Ensure ChartExtractor implements imdbtop.ChartExtractor at compile time.
var _ imdbtop.ChartExtractor = (*ChartExtractor)(nil)

// ChartExtractor extracts chart items from IMDb chart pages.
type ChartExtractor struct{}

// NewChartExtractor creates a new ChartExtractor.
func NewChartExtractor() *ChartExtractor {
	return &ChartExtractor{}
}

// Extract returns up to limit chart items in document order.
// Summary items without a heading, a year or a numeric rating are skipped.
// A blank heading yields an empty title and "0000" yields year 0.
func (e *ChartExtractor) Extract(html string, limit int) ([]imdbtop.ChartItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, imdbtop.Errorf(imdbtop.EINVALID, "failed to parse HTML: %v", err)
	}

	items := []imdbtop.ChartItem{}
	if limit <= 0 {
		return items, nil
	}

	doc.Find(SummaryItemSelector).EachWithBreak(func(_ int, li *goquery.Selection) bool {
		item, ok := parseSummaryItem(li)
		if !ok {
			return true
		}
		items = append(items, item)
		return len(items) < limit
	})

	return items, nil
}

// parseSummaryItem reads a single chart entry. It reports false when any
// required field is missing so that no partial item is ever produced.
func parseSummaryItem(li *goquery.Selection) (imdbtop.ChartItem, bool) {
	heading := li.Find("h3").First()
	if heading.Length() == 0 {
		return imdbtop.ChartItem{}, false
	}
	title := strings.TrimSpace(heading.Text())

	year, ok := parseYear(li)
	if !ok {
		return imdbtop.ChartItem{}, false
	}

	ratingSpan := li.Find(ratingSelector).First()
	if ratingSpan.Length() == 0 {
		return imdbtop.ChartItem{}, false
	}
	rating, err := parseRating(ratingSpan.Text())
	if err != nil {
		return imdbtop.ChartItem{}, false
	}

	return imdbtop.ChartItem{Title: title, Year: year, Rating: rating}, true
}

// parseYear returns the first metadata span whose leading four characters
// form an integer. Series ranges such as "2008–2013" yield their start year.
func parseYear(li *goquery.Selection) (int, bool) {
	var year int
	var found bool
	li.Find(metadataSelector).EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := []rune(strings.TrimSpace(span.Text()))
		if len(text) > 4 {
			text = text[:4]
		}
		n, err := strconv.Atoi(string(text))
		if err != nil {
			return true
		}
		year, found = n, true
		return false
	})
	return year, found
}

// parseRating accepts both "8.5" and "8,5".
func parseRating(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	return strconv.ParseFloat(text, 64)
}
