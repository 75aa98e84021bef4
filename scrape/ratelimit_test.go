package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/imdbtop"
	"github.com/fwojciec/imdbtop/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements imdbtop.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ imdbtop.DomainLimiter = scrape.NewDomainLimiter(1)
	})

	t.Run("spaces requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "www.imdb.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "www.imdb.com"))

		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("does not delay other hosts", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "www.imdb.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "m.imdb.com"))

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns error when context expires while waiting", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "www.imdb.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "www.imdb.com"))
	})
}
