package ratelimit

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/hrkit/pkg/clientip"
)

// Result is the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns how long to wait before the next request may be
// allowed. It is zero when the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Store records request timestamps per key. RecordIfAllowed atomically
// prunes entries older than the window, records the new timestamp when the
// key is under limit, and returns the in-window count after the attempt.
type Store interface {
	RecordIfAllowed(ctx context.Context, key string, at time.Time, window time.Duration, limit int) (allowed bool, count int64, err error)
	Delete(ctx context.Context, key string) error
}

// KeyFunc extracts the rate limit key from a request. An empty key skips
// limiting for that request.
type KeyFunc func(*http.Request) string

// ByClientIP keys requests by caller IP, preferring the value the clientip
// middleware stored on the context.
func ByClientIP() KeyFunc {
	return func(r *http.Request) string {
		if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
			return ip
		}
		return clientip.GetIP(r)
	}
}
