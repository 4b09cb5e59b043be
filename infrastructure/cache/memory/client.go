// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides TTL support with lazy expiration and periodic cleanup

package memory

import (
	"context"
	"errors"
	"time"

	goc "github.com/patrickmn/go-cache"
)

// MemoryCache implements the Cache interface using an in-process store.
// Values are copied on the way in and out so callers can never mutate a
// cached entry through a shared slice.
type MemoryCache struct {
	store *goc.Cache
}

// NewMemoryCache creates an in-memory cache. defaultExpiration applies to
// entries stored through the underlying store's default; cleanupInterval is
// how often expired entries are evicted in the background.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		store: goc.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, errors.New("key not found")
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, errors.New("key not found")
	}

	// Return a copy of the value
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache. A zero or negative TTL stores the value
// without expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Store a copy of the value
	data := make([]byte, len(value))
	copy(data, value)

	if ttl <= 0 {
		c.store.Set(key, data, goc.NoExpiration)
		return nil
	}

	c.store.Set(key, data, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.store.Delete(key)
	return nil
}
