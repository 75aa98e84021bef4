// Package scrape refreshes the local chart snapshots from IMDb, falling back
// to the previous snapshot when the network fetch fails.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/imdbtop"
	"golang.org/x/sync/errgroup"
)

// Refresher fetches chart pages and keeps their snapshots current.
type Refresher struct {
	Fetcher   imdbtop.Fetcher
	Snapshots imdbtop.SnapshotStore

	// Runs records every refresh when set.
	Runs imdbtop.RunService

	// RateLimiter spaces requests to the same host when set.
	RateLimiter imdbtop.DomainLimiter

	// URLs maps each chart to the page it is scraped from.
	URLs map[imdbtop.Chart]string
}

// Result is the outcome of refreshing one chart.
type Result struct {
	Chart  imdbtop.Chart
	Source imdbtop.RunSource
	HTML   string

	// FetchErr is the network error that caused a fallback to the snapshot.
	FetchErr error
}

// Refresh fetches the chart page once and replaces its snapshot. When the
// fetch fails the existing snapshot is used instead. Returns ENOTFOUND if
// the fetch failed and there is no snapshot to fall back to.
func (r *Refresher) Refresh(ctx context.Context, chart imdbtop.Chart) (*Result, error) {
	url := r.URLs[chart]
	if url == "" {
		return nil, imdbtop.Errorf(imdbtop.EINVALID, "no URL configured for %s chart", chart)
	}
	result := &Result{Chart: chart}

	html, err := r.fetch(ctx, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		result.FetchErr = err

		if !r.Snapshots.Exists(chart) {
			return nil, imdbtop.Errorf(imdbtop.ENOTFOUND, "could not fetch %s chart (%v) and no local snapshot exists", chart, err)
		}
		if html, err = r.Snapshots.Load(chart); err != nil {
			return nil, fmt.Errorf("loading %s snapshot: %w", chart, err)
		}
		result.Source = imdbtop.SourceCache
	} else {
		if err := r.Snapshots.Save(chart, html); err != nil {
			return nil, fmt.Errorf("saving %s snapshot: %w", chart, err)
		}
		result.Source = imdbtop.SourceNetwork
	}
	result.HTML = html

	if r.Runs != nil {
		run := &imdbtop.Run{Chart: chart, Source: result.Source}
		if err := r.Runs.CreateRun(ctx, run, html); err != nil {
			return nil, fmt.Errorf("recording %s run: %w", chart, err)
		}
	}

	return result, nil
}

func (r *Refresher) fetch(ctx context.Context, url string) (string, error) {
	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, hostOf(url)); err != nil {
			return "", err
		}
	}

	return r.Fetcher.Fetch(ctx, url)
}

// Outcome pairs a chart's refresh result with its error.
type Outcome struct {
	Result *Result
	Err    error
}

// RefreshAll refreshes the charts concurrently. The outcomes are returned in
// the order of charts; a failure of one chart does not affect the others.
func (r *Refresher) RefreshAll(ctx context.Context, charts ...imdbtop.Chart) []Outcome {
	outcomes := make([]Outcome, len(charts))

	var g errgroup.Group
	for i, chart := range charts {
		g.Go(func() error {
			result, err := r.Refresh(ctx, chart)
			outcomes[i] = Outcome{Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
