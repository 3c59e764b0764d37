package cache

import (
	"context"
	"time"
)

// Cache stores raw byte payloads under string keys with a per-entry TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns (value, true) if found, (nil, false) if not found or on backend failure.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value in the cache with a TTL.
	// Returns false if the backend rejected or failed the write.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string)

	// Clear removes all values from the cache.
	Clear(ctx context.Context)

	// Close closes the cache and releases resources.
	Close()
}
