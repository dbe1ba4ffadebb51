package ratelimit

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps sliding windows in process memory. A background sweep
// drops windows whose newest entry has aged out, so idle keys do not leak.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window

	sweepEvery time.Duration
	done       chan struct{}
	closeOnce  sync.Once
}

type window struct {
	mu         sync.Mutex
	timestamps []time.Time
	expiresAt  time.Time
}

// MemoryStoreOption adjusts MemoryStore construction.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often expired windows are swept out.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.sweepEvery = interval
		}
	}
}

// NewMemoryStore creates an in-memory store. Call Close to stop the sweep
// goroutine.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows:    make(map[string]*window),
		sweepEvery: time.Minute,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.sweepLoop()

	return s
}

// RecordIfAllowed prunes timestamps older than the window, records at when
// the key holds fewer than limit entries, and returns the resulting count.
func (s *MemoryStore) RecordIfAllowed(ctx context.Context, key string, at time.Time, windowSize time.Duration, limit int) (bool, int64, error) {
	s.mu.Lock()
	w := s.windows[key]
	if w == nil {
		w = &window{timestamps: make([]time.Time, 0, limit)}
		s.windows[key] = w
	}
	s.mu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := at.Add(-windowSize)
	w.timestamps = slices.DeleteFunc(w.timestamps, func(ts time.Time) bool {
		return !ts.After(cutoff)
	})

	if len(w.timestamps) >= limit {
		return false, int64(len(w.timestamps)), nil
	}

	w.timestamps = append(w.timestamps, at)
	w.expiresAt = at.Add(windowSize)
	return true, int64(len(w.timestamps)), nil
}

// Delete removes the window for the given key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.windows, key)
	s.mu.Unlock()
	return nil
}

// Close stops the sweep goroutine.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, w := range s.windows {
		w.mu.Lock()
		aged := now.After(w.expiresAt)
		w.mu.Unlock()
		if aged {
			delete(s.windows, key)
		}
	}
}
