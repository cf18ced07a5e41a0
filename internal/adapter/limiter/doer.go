// Package limiter throttles outgoing github api requests.
package limiter

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// limitedHTTPDoer wraps HTTPDoer and allows Dos with maximum rate limit.
type limitedHTTPDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewHTTPDoer creates rate limited HTTPDoer.
// maxRate is the maximum number of requests per second, burst is the number of requests allowed at once.
// Non positive maxRate disables limiting.
func NewHTTPDoer(doer HTTPDoer, maxRate float64, burst int) HTTPDoer {
	limit := rate.Limit(maxRate)
	if maxRate <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}

	return &limitedHTTPDoer{
		doer:    doer,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Do executes http request. If limit is exceeded, blocks until call rate is within limit or request context is done.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		return nil, errors.Wrapf(err, "waiting for rate limiter, %s %s", r.Method, r.URL)
	}

	return d.doer.Do(r)
}
