package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"
)

// RistrettoCache is a bounded in-process cache implementation using Ristretto.
type RistrettoCache struct {
	cache  *ristretto.Cache
	logger *zap.Logger
}

// RistrettoConfig holds configuration for Ristretto cache.
type RistrettoConfig struct {
	NumCounters int64 // Number of keys to track frequency (10x max items)
	MaxCost     int64 // Maximum number of entries
	BufferItems int64 // Number of keys per Get buffer
	Logger      *zap.Logger
}

// NewRistrettoCache creates a new Ristretto-backed cache.
func NewRistrettoCache(cfg *RistrettoConfig) (*RistrettoCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     true,

		// Cost is an entry count, not bytes.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{
		cache:  cache,
		logger: cfg.Logger,
	}, nil
}

// Get retrieves a value from the cache.
func (r *RistrettoCache) Get(_ context.Context, key string) ([]byte, bool) {
	value, found := r.cache.Get(key)
	if !found {
		CacheMissesTotal.WithLabelValues(backendRistretto).Inc()
		r.logger.Debug("cache-miss", zap.String("key", key))
		return nil, false
	}

	data, ok := value.([]byte)
	if !ok {
		CacheErrorsTotal.WithLabelValues(backendRistretto, "get").Inc()
		r.logger.Warn("cache-unexpected-value-type", zap.String("key", key))
		return nil, false
	}

	CacheHitsTotal.WithLabelValues(backendRistretto).Inc()
	r.logger.Debug("cache-hit", zap.String("key", key))
	return data, true
}

// Set stores a value in the cache with a TTL.
// Each entry costs 1, so MaxCost bounds the number of entries.
// Set waits for Ristretto's write buffer so a following Get observes the value.
func (r *RistrettoCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) bool {
	success := r.cache.SetWithTTL(key, value, 1, ttl)
	if !success {
		r.logger.Debug("cache-set-dropped", zap.String("key", key))
		return false
	}

	r.cache.Wait()
	CacheSetsTotal.WithLabelValues(backendRistretto).Inc()
	r.logger.Debug("cache-set",
		zap.String("key", key),
		zap.Duration("ttl", ttl))
	return true
}

// Delete removes a value from the cache.
func (r *RistrettoCache) Delete(_ context.Context, key string) {
	r.cache.Del(key)
	CacheDeletesTotal.WithLabelValues(backendRistretto).Inc()
	r.logger.Debug("cache-delete", zap.String("key", key))
}

// Clear removes all values from the cache.
func (r *RistrettoCache) Clear(_ context.Context) {
	r.cache.Clear()
	r.logger.Info("cache-cleared")
}

// Close closes the cache and releases resources.
func (r *RistrettoCache) Close() {
	r.cache.Close()
	r.logger.Info("cache-closed")
}

// Metrics returns Ristretto's internal metrics.
func (r *RistrettoCache) Metrics() *ristretto.Metrics {
	return r.cache.Metrics
}
