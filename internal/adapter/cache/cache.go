package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values in Redis under a common key prefix.
type Cache struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// New creates a Cache. Redis failures are logged and treated as misses,
// so the storefront keeps serving from the database.
func New(rdb redis.Cmdable, prefix string, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		log:    logger.With("service", "cache"),
	}
}

// Remember returns the cached value for key, or calls load and caches its result.
// Errors from load are returned as-is and never cached.
func Remember[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	full := c.prefix + key

	raw, err := c.rdb.Get(ctx, full).Bytes()
	switch {
	case err == nil:
		var v T
		jsonErr := json.Unmarshal(raw, &v)
		if jsonErr == nil {
			return v, nil
		}
		c.log.WarnContext(ctx, "cache decode failed", slog.String("key", full), slog.String("error", jsonErr.Error()))
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "cache get failed", slog.String("key", full), slog.String("error", err.Error()))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", slog.String("key", full), slog.String("error", err.Error()))
		return v, nil
	}
	if err := c.rdb.Set(ctx, full, encoded, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache set failed", slog.String("key", full), slog.String("error", err.Error()))
	}
	return v, nil
}

// Invalidate removes the given keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	if err := c.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cache: invalidate: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
