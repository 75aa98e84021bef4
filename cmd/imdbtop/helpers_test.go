package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/imdbtop"
	main "github.com/fwojciec/imdbtop/cmd/imdbtop"
	"github.com/fwojciec/imdbtop/mock"
	"github.com/fwojciec/imdbtop/pretty"
	"github.com/fwojciec/imdbtop/scrape"
)

// testDeps returns dependencies writing to the given buffers with no services set.
func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  slog.New(slog.DiscardHandler),
		Printer: pretty.NewPrinter(stdout),
		Limit:   250,
	}
}

// memMovies is a MovieService keeping movies in memory and ignoring duplicate titles.
func memMovies() *mock.MovieService {
	var mu sync.Mutex
	var stored []*imdbtop.Movie
	return &mock.MovieService{
		CreateMoviesFn: func(_ context.Context, movies []*imdbtop.Movie) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			n := 0
		next:
			for _, m := range movies {
				for _, s := range stored {
					if s.Title == m.Title {
						continue next
					}
				}
				m.ID = int64(len(stored) + 1)
				stored = append(stored, m)
				n++
			}
			return n, nil
		},
		FindMoviesFn: func(context.Context, imdbtop.MovieFilter) ([]*imdbtop.Movie, error) {
			mu.Lock()
			defer mu.Unlock()
			return append([]*imdbtop.Movie(nil), stored...), nil
		},
	}
}

// memSeries is a SeriesService keeping series in memory.
func memSeries() *mock.SeriesService {
	var mu sync.Mutex
	var stored []*imdbtop.Series
	return &mock.SeriesService{
		CreateSeriesFn: func(_ context.Context, series []*imdbtop.Series) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			for _, s := range series {
				s.ID = int64(len(stored) + 1)
				stored = append(stored, s)
			}
			return len(series), nil
		},
		FindSeriesFn: func(context.Context, imdbtop.SeriesFilter) ([]*imdbtop.Series, error) {
			mu.Lock()
			defer mu.Unlock()
			return append([]*imdbtop.Series(nil), stored...), nil
		},
	}
}

// fixedSnapshots is a SnapshotStore that holds the given pages and accepts saves.
func fixedSnapshots(pages map[imdbtop.Chart]string) *mock.SnapshotStore {
	var mu sync.Mutex
	return &mock.SnapshotStore{
		SaveFn: func(chart imdbtop.Chart, html string) error {
			mu.Lock()
			defer mu.Unlock()
			pages[chart] = html
			return nil
		},
		LoadFn: func(chart imdbtop.Chart) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			html, ok := pages[chart]
			if !ok {
				return "", imdbtop.Errorf(imdbtop.ENOTFOUND, "snapshot not found")
			}
			return html, nil
		},
		ExistsFn: func(chart imdbtop.Chart) bool {
			mu.Lock()
			defer mu.Unlock()
			_, ok := pages[chart]
			return ok
		},
	}
}

var testURLs = map[imdbtop.Chart]string{
	imdbtop.ChartMovies: "https://www.imdb.com/chart/top/",
	imdbtop.ChartSeries: "https://www.imdb.com/chart/toptv/",
}

// refresher serves each chart from the pages map; charts missing from the
// map fail to fetch.
func refresher(pages map[imdbtop.Chart]string, snapshots *mock.SnapshotStore) *scrape.Refresher {
	byURL := make(map[string]string)
	for chart, html := range pages {
		byURL[testURLs[chart]] = html
	}
	return &scrape.Refresher{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				html, ok := byURL[url]
				if !ok {
					return "", imdbtop.Errorf(imdbtop.EINTERNAL, "status 503 for %s", url)
				}
				return html, nil
			},
		},
		Snapshots: snapshots,
		URLs:      testURLs,
	}
}

// itemsExtractor returns the items registered for an HTML page.
func itemsExtractor(items map[string][]imdbtop.ChartItem) *mock.ChartExtractor {
	return &mock.ChartExtractor{
		ExtractFn: func(html string, limit int) ([]imdbtop.ChartItem, error) {
			found := items[html]
			if len(found) > limit {
				found = found[:limit]
			}
			return found, nil
		},
	}
}
