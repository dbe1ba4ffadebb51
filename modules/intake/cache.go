package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/hrkit/pkg/cache"
	"github.com/dmitrymomot/hrkit/pkg/payload"
)

// extractionKeyPrefix namespaces extraction cache entries in a shared Redis.
const extractionKeyPrefix = "extraction:"

// RedisCache stores extraction results in Redis, keyed by the content hash of
// the uploaded document. Re-uploading an identical document within the TTL
// skips text extraction and LLM structuring.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a cache on the given client. Entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached extraction for the document hash, or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, hash string) (payload.Payload, error) {
	data, err := c.client.Get(ctx, extractionKeyPrefix+hash).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	extracted, err := payload.FromJSON(data)
	if err != nil {
		// A corrupted entry is as good as absent.
		return nil, ErrCacheMiss
	}
	return extracted, nil
}

// Set stores the extraction under the document hash.
func (c *RedisCache) Set(ctx context.Context, hash string, extracted payload.Payload) error {
	data, err := json.Marshal(extracted)
	if err != nil {
		return fmt.Errorf("encode extraction: %w", err)
	}

	if err := c.client.Set(ctx, extractionKeyPrefix+hash, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// MemoryCache is the in-process extraction cache used when no shared cache
// backend is configured. Entries survive only for the lifetime of the
// process.
type MemoryCache struct {
	entries *cache.LRUCache[string, payload.Payload]
	ttl     time.Duration
}

// NewMemoryCache creates an in-process cache holding up to capacity
// extractions, each expiring after ttl.
func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: cache.NewLRUCache[string, payload.Payload](capacity),
		ttl:     ttl,
	}
}

// Get returns the cached extraction for the document hash, or ErrCacheMiss.
func (c *MemoryCache) Get(_ context.Context, hash string) (payload.Payload, error) {
	extracted, ok := c.entries.Get(hash)
	if !ok {
		return nil, ErrCacheMiss
	}
	return extracted, nil
}

// Set stores the extraction under the document hash.
func (c *MemoryCache) Set(_ context.Context, hash string, extracted payload.Payload) error {
	c.entries.PutTTL(hash, extracted, c.ttl)
	return nil
}
