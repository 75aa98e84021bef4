package mock

import "github.com/fwojciec/imdbtop"

var _ imdbtop.ChartExtractor = (*ChartExtractor)(nil)

// ChartExtractor is a mock implementation of imdbtop.ChartExtractor.
type ChartExtractor struct {
	ExtractFn func(html string, limit int) ([]imdbtop.ChartItem, error)
}

func (e *ChartExtractor) Extract(html string, limit int) ([]imdbtop.ChartItem, error) {
	return e.ExtractFn(html, limit)
}
