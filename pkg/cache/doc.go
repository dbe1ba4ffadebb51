// Package cache provides a generic thread-safe LRU cache with optional
// per-entry expiry.
//
// The cache holds up to a fixed number of entries and evicts the least
// recently used one when full. Entries stored with PutTTL additionally carry
// a deadline and are treated as absent once it passes; expired entries are
// collected lazily when their key is next touched. An eviction callback can
// be installed for cleanup of evicted values.
//
// # Usage
//
// The intake pipeline uses the cache as the in-process extraction cache when
// no shared cache backend is configured, keyed by document content hash:
//
//	extractions := cache.NewLRUCache[string, payload.Payload](256)
//
//	extractions.PutTTL(docHash, extracted, 24*time.Hour)
//
//	if cached, ok := extractions.Get(docHash); ok {
//		return cached, nil
//	}
//
// Entries without a TTL stay until capacity pressure pushes them out:
//
//	templates := cache.NewLRUCache[string, candidate.Record](16)
//	templates.Put(role, tmpl)
//
// # Concurrency
//
// All methods are safe for concurrent use. The eviction callback runs while
// the cache lock is held, so it must not call back into the cache.
package cache
