package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/imdbtop"
	"github.com/fwojciec/imdbtop/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash, size and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		run := &imdbtop.Run{Chart: imdbtop.ChartMovies, Source: imdbtop.SourceNetwork}
		err := svc.CreateRun(context.Background(), run, "<html>top</html>")

		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.Len(t, run.ContentHash, 16)
		assert.Equal(t, 16, run.Bytes)
		assert.False(t, run.FetchedAt.IsZero())
	})

	t.Run("same content yields same hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()

		a := &imdbtop.Run{Chart: imdbtop.ChartMovies, Source: imdbtop.SourceNetwork}
		b := &imdbtop.Run{Chart: imdbtop.ChartMovies, Source: imdbtop.SourceCache}
		c := &imdbtop.Run{Chart: imdbtop.ChartMovies, Source: imdbtop.SourceNetwork}
		require.NoError(t, svc.CreateRun(ctx, a, "same"))
		require.NoError(t, svc.CreateRun(ctx, b, "same"))
		require.NoError(t, svc.CreateRun(ctx, c, "changed"))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns EINVALID for invalid run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &imdbtop.Run{}, "")

		assert.Equal(t, imdbtop.EINVALID, imdbtop.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewRunService(setupTestDB(t))
	ctx := context.Background()

	first := &imdbtop.Run{Chart: imdbtop.ChartMovies, Source: imdbtop.SourceNetwork}
	second := &imdbtop.Run{Chart: imdbtop.ChartSeries, Source: imdbtop.SourceCache}
	third := &imdbtop.Run{Chart: imdbtop.ChartMovies, Source: imdbtop.SourceCache}
	require.NoError(t, svc.CreateRun(ctx, first, "a"))
	require.NoError(t, svc.CreateRun(ctx, second, "b"))
	require.NoError(t, svc.CreateRun(ctx, third, "c"))

	runs, err := svc.FindRuns(ctx, imdbtop.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, third.ID, runs[0].ID, "newest first")
	assert.Equal(t, first.ID, runs[2].ID)
	assert.Equal(t, imdbtop.SourceCache, runs[0].Source)
	assert.Equal(t, third.ContentHash, runs[0].ContentHash)
	assert.WithinDuration(t, third.FetchedAt, runs[0].FetchedAt, 0)

	chart := imdbtop.ChartMovies
	runs, err = svc.FindRuns(ctx, imdbtop.RunFilter{Chart: &chart, Limit: 1})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, third.ID, runs[0].ID)
}
