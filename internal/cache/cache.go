package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ContentCache is a Redis-backed JSON cache for public content listings.
// Cache failures never fail a request: on any Redis error callers fall back
// to the store and the error is logged at debug level.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New builds a cache. A nil client disables caching entirely.
func New(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ContentCache {
	return &ContentCache{client: client, ttl: ttl, logger: logger}
}

// Get unmarshals the cached value for key into dest. The boolean reports a hit.
func (c *ContentCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Debug("cache entry corrupt, dropping", zap.String("key", key), zap.Error(err))
		c.Invalidate(ctx, key)
		return false
	}
	return true
}

// Set stores value under key with the configured TTL.
func (c *ContentCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Debug("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes the given keys after an admin mutation.
func (c *ContentCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
