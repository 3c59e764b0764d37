package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache is a cache implementation backed by Redis, used to share a warm
// cache between replicas. Entries expire through Redis key TTLs.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// RedisConfig holds configuration for Redis cache.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string // Namespace for every key, e.g. "profitrade:"
	DialTimeout time.Duration
	Logger      *zap.Logger
}

// NewRedisCache connects to Redis and verifies the connection with PING.
func NewRedisCache(ctx context.Context, cfg *RedisConfig) (*RedisCache, error) {
	dialTimeout := cfg.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	err := client.Ping(pingCtx).Err()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	cfg.Logger.Info("redis-cache-connected",
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB))

	return &RedisCache{
		client: client,
		prefix: cfg.KeyPrefix,
		logger: cfg.Logger,
	}, nil
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

// Get retrieves a value from the cache.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		CacheMissesTotal.WithLabelValues(backendRedis).Inc()
		r.logger.Debug("cache-miss", zap.String("key", key))
		return nil, false
	}
	if err != nil {
		CacheErrorsTotal.WithLabelValues(backendRedis, "get").Inc()
		r.logger.Warn("cache-get-failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	CacheHitsTotal.WithLabelValues(backendRedis).Inc()
	r.logger.Debug("cache-hit", zap.String("key", key))
	return data, true
}

// Set stores a value in the cache with a TTL.
func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	err := r.client.Set(ctx, r.key(key), value, ttl).Err()
	if err != nil {
		CacheErrorsTotal.WithLabelValues(backendRedis, "set").Inc()
		r.logger.Warn("cache-set-failed", zap.String("key", key), zap.Error(err))
		return false
	}

	CacheSetsTotal.WithLabelValues(backendRedis).Inc()
	r.logger.Debug("cache-set",
		zap.String("key", key),
		zap.Duration("ttl", ttl))
	return true
}

// Delete removes a value from the cache.
func (r *RedisCache) Delete(ctx context.Context, key string) {
	err := r.client.Del(ctx, r.key(key)).Err()
	if err != nil {
		CacheErrorsTotal.WithLabelValues(backendRedis, "delete").Inc()
		r.logger.Warn("cache-delete-failed", zap.String("key", key), zap.Error(err))
		return
	}

	CacheDeletesTotal.WithLabelValues(backendRedis).Inc()
	r.logger.Debug("cache-delete", zap.String("key", key))
}

// Clear removes every key under the configured prefix.
func (r *RedisCache) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	removed := 0
	for iter.Next(ctx) {
		err := r.client.Del(ctx, iter.Val()).Err()
		if err != nil {
			CacheErrorsTotal.WithLabelValues(backendRedis, "clear").Inc()
			r.logger.Warn("cache-clear-delete-failed", zap.String("key", iter.Val()), zap.Error(err))
			continue
		}
		removed++
	}

	err := iter.Err()
	if err != nil {
		CacheErrorsTotal.WithLabelValues(backendRedis, "clear").Inc()
		r.logger.Warn("cache-clear-scan-failed", zap.Error(err))
	}

	r.logger.Info("cache-cleared", zap.Int("removed", removed))
}

// Close closes the Redis connection pool.
func (r *RedisCache) Close() {
	err := r.client.Close()
	if err != nil {
		r.logger.Warn("cache-close-failed", zap.Error(err))
		return
	}
	r.logger.Info("cache-closed")
}
