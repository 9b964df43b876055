package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin optional Redis layer for hot public responses. A nil or
// unconfigured cache is a valid no-op: every lookup misses.
type Cache struct {
	rdb *redis.Client
}

func New(redisURL string) *Cache {
	if redisURL == "" {
		return &Cache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache disabled: %v", err)
		return &Cache{}
	}

	return &Cache{rdb: redis.NewClient(opts)}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache del: %v", err)
	}
}
