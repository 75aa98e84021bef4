package main

import (
	"fmt"

	"github.com/fwojciec/imdbtop"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := imdbtop.RunFilter{Limit: c.Last}
	switch chart := imdbtop.Chart(c.Chart); chart {
	case "":
	case imdbtop.ChartMovies, imdbtop.ChartSeries:
		filter.Chart = &chart
	default:
		err := imdbtop.Errorf(imdbtop.EINVALID, "unknown chart %q (want movies or series)", c.Chart)
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(err))
		return err
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtop.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'imdbtop fetch' to refresh the charts.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-7s  %7d  %s  %s\n",
			r.ID, r.FetchedAt.Local().Format("2006-01-02 15:04:05"), r.Source, r.Bytes, r.ContentHash, r.Chart)
	}

	return nil
}
