package main

import (
	"fmt"

	"github.com/fwojciec/imdbtop"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	outcomes := deps.Refresher.RefreshAll(deps.Ctx, imdbtop.ChartMovies, imdbtop.ChartSeries)

	var failed error
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(outcome.Err))
			if failed == nil {
				failed = outcome.Err
			}
			continue
		}
		r := outcome.Result
		fmt.Fprintf(deps.Stdout, "%s: %s (%d bytes)\n", r.Chart, r.Source, len(r.HTML))
		if r.FetchErr != nil {
			fmt.Fprintf(deps.Stderr, "%s: fetch failed: %v\n", r.Chart, r.FetchErr)
		}
	}

	return failed
}
