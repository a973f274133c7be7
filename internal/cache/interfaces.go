package cache

import (
	"context"
	"time"
)

// Cache is the search-result cache. The abstraction allows swapping
// between the in-memory cache (development) and Redis (production)
// without changing business logic. Every mutation of auction state
// flushes the whole cache, so entries never outlive a state change.
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Close releases the cache's resources.
	Close() error
}

// CacheError is a sentinel cache error.
type CacheError string

func (e CacheError) Error() string { return string(e) }

// ErrCacheMiss indicates the key was not found in cache.
const ErrCacheMiss CacheError = "cache miss"
