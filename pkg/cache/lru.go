package cache

import (
	"sync"
	"time"
)

// entry is a node in the recency ring. Entries sit between the sentinel's
// next (hottest) and prev (coldest) ends.
type entry[K comparable, V any] struct {
	key      K
	value    V
	deadline time.Time // zero deadline never expires
	prev     *entry[K, V]
	next     *entry[K, V]
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.deadline.IsZero() && now.After(e.deadline)
}

// LRUCache is a fixed-capacity cache with optional per-entry expiry. Reads
// and writes refresh recency; overflow drops the coldest entry. Expired
// entries are collected lazily when touched, so Len may briefly count
// entries whose deadline already passed.
//
// All methods are safe for concurrent use.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	index    map[K]*entry[K, V]
	root     entry[K, V] // sentinel: root.next is hottest, root.prev is coldest
	capacity int
	onEvict  func(key K, value V)
}

// NewLRUCache builds a cache holding at most capacity entries. Panics when
// capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity < 1 {
		panic("cache: capacity must be at least 1")
	}
	c := &LRUCache[K, V]{
		index:    make(map[K]*entry[K, V], capacity),
		capacity: capacity,
	}
	c.root.next = &c.root
	c.root.prev = &c.root
	return c
}

// SetEvictCallback registers fn to run for every entry leaving the cache,
// whether through capacity pressure, expiry, Remove, or Clear. The callback
// runs under the cache lock and must not call back into the cache.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get returns the value stored under key, refreshing its recency. An entry
// past its deadline is dropped and reported as absent.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	if e.expired(time.Now()) {
		c.drop(e)
		var zero V
		return zero, false
	}

	c.detach(e)
	c.attach(e)
	return e.value, true
}

// Put stores value under key with no expiry, reporting the value it
// replaced.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	return c.PutTTL(key, value, 0)
}

// PutTTL stores value under key, expiring ttl from now. A non-positive ttl
// keeps the entry until eviction. Overwriting an entry that already expired
// reports existed=false: its value was no longer retrievable.
func (c *LRUCache[K, V]) PutTTL(key K, value V, ttl time.Duration) (V, bool) {
	now := time.Now()
	var deadline time.Time
	if ttl > 0 {
		deadline = now.Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.index[key]; ok {
		if e.expired(now) {
			c.drop(e)
		} else {
			old := e.value
			e.value = value
			e.deadline = deadline
			c.detach(e)
			c.attach(e)
			return old, true
		}
	}

	e := &entry[K, V]{key: key, value: value, deadline: deadline}
	c.index[key] = e
	c.attach(e)

	if len(c.index) > c.capacity {
		c.drop(c.root.prev)
	}

	var zero V
	return zero, false
}

// Remove drops the entry under key, reporting the value it held. An entry
// past its deadline reports existed=false.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	expired := e.expired(time.Now())
	c.drop(e)
	if expired {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Len counts stored entries, including expired ones nothing has touched yet.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Clear empties the cache, running the evict callback for every entry.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for e := c.root.next; e != &c.root; e = e.next {
			c.onEvict(e.key, e.value)
		}
	}
	c.index = make(map[K]*entry[K, V], c.capacity)
	c.root.next = &c.root
	c.root.prev = &c.root
}

func (c *LRUCache[K, V]) attach(e *entry[K, V]) {
	e.prev = &c.root
	e.next = c.root.next
	e.prev.next = e
	e.next.prev = e
}

func (c *LRUCache[K, V]) detach(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
}

// drop unlinks e and runs the evict callback. Callers hold the lock.
func (c *LRUCache[K, V]) drop(e *entry[K, V]) {
	c.detach(e)
	delete(c.index, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
