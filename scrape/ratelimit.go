package scrape

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/imdbtop"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond spaces requests to the same host. Both charts
// live on www.imdb.com, so the second fetch waits about one second.
const DefaultRequestsPerSecond = 1.0

var _ imdbtop.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps one token bucket per host with a burst of 1.
// It is safe for concurrent use.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second per host.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// hostOf returns the host of rawURL, or rawURL itself when it has none,
// so that malformed URLs still share a bucket.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
