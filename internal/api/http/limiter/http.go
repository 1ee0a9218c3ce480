package limiter

import (
	"fmt"
	"net/http"

	"github.com/m-zajac/contributorgallery/internal/app"
	"golang.org/x/time/rate"
)

// limitedTransport wraps http.RoundTripper and allows round trips with maximum rate limit.
type limitedTransport struct {
	rt      http.RoundTripper
	limiter *rate.Limiter
}

// NewTransport creates rate limited http.RoundTripper.
// maxRate - maximum number of round trips per second. Values <= 0 disable limiting.
func NewTransport(rt http.RoundTripper, maxRate float64) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	if maxRate <= 0 {
		return rt
	}

	return &limitedTransport{
		rt:      rt,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// RoundTrip executes http request. If limit is exceeded, blocks until call rate is within limit.
// Request is never retried.
func (t *limitedTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, &app.NetworkError{Err: fmt.Errorf("waiting for transport limiter: %w", err)}
	}

	return t.rt.RoundTrip(r)
}
