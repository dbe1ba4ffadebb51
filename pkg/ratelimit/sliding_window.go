package ratelimit

import (
	"context"
	"time"
)

// SlidingWindow allows at most limit requests per key within a moving
// window. It tracks individual request timestamps, so limits stay accurate
// across window boundaries at the cost of some memory per active key.
type SlidingWindow struct {
	store  Store
	limit  int
	window time.Duration
}

// NewSlidingWindow creates a sliding window limiter backed by store.
func NewSlidingWindow(store Store, limit int, window time.Duration) (*SlidingWindow, error) {
	switch {
	case store == nil:
		return nil, ErrStoreRequired
	case limit <= 0:
		return nil, ErrInvalidLimit
	case window <= 0:
		return nil, ErrInvalidWindow
	}

	return &SlidingWindow{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// Allow checks whether one more request is allowed for the given key and
// records it when it is.
func (sw *SlidingWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := time.Now()
	allowed, count, err := sw.store.RecordIfAllowed(ctx, key, now, sw.window, sw.limit)
	if err != nil {
		return nil, err
	}

	return &Result{
		Allowed:   allowed,
		Limit:     sw.limit,
		Remaining: max(0, sw.limit-int(count)),
		ResetAt:   now.Add(sw.window),
	}, nil
}

// Reset clears the window for the given key.
func (sw *SlidingWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return sw.store.Delete(ctx, key)
}
