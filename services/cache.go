package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rozgaar-gb-server/models"
	"rozgaar-gb-server/monitoring"
)

// Cache stores JSON-encoded query results keyed by request parameters.
// Writes invalidate the affected keys explicitly.
type Cache interface {
	// Get decodes the cached value into dst and reports whether it was found
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

func workerKey(id uuid.UUID) string  { return "worker:" + id.String() }
func reviewsKey(id uuid.UUID) string { return "reviews:" + id.String() }

// cacheType labels metrics by key family, e.g. "workers" or "reviews"
func cacheType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}

// RedisCache implements Cache on Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		monitoring.RecordCacheMiss(cacheType(key))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get from cache: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	monitoring.RecordCacheHit(cacheType(key))
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s for cache: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete from cache: %w", err)
	}
	return nil
}

// DeletePrefix removes every key starting with prefix using SCAN
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	return c.Delete(ctx, keys...)
}

// NoopCache is used when no Redis URL is configured; every read misses
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any) error         { return nil }
func (NoopCache) Delete(context.Context, ...string) error        { return nil }
func (NoopCache) DeletePrefix(context.Context, string) error     { return nil }

// invalidateWorker drops every cached result that can contain the worker's
// profile or rating. Failures are logged; the write has already happened.
func invalidateWorker(ctx context.Context, cache Cache, log *zap.Logger, workerID uuid.UUID) {
	if err := cache.Delete(ctx, workerKey(workerID), reviewsKey(workerID)); err != nil {
		log.Warn("cache invalidation failed", zap.String("worker_id", workerID.String()), zap.Error(err))
	}
	if err := cache.DeletePrefix(ctx, models.WorkerSearchKeyPrefix); err != nil {
		log.Warn("search cache invalidation failed", zap.Error(err))
	}
}

// cached loads key from cache into dst, or calls load and stores its result.
// Cache errors never fail the request.
func cached[T any](ctx context.Context, cache Cache, log *zap.Logger, key string, load func() (T, error)) (T, error) {
	var value T
	hit, err := cache.Get(ctx, key, &value)
	if err != nil {
		log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return value, nil
	}

	value, err = load()
	if err != nil {
		return value, err
	}
	if err := cache.Set(ctx, key, value); err != nil {
		log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
