package rolecache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache implements Cache against a dedicated redis database so role
// entries survive restarts and are shared between API instances. Redis
// owns expiry here; the injected clock only matters for the in-memory
// implementation.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(key string, value string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.rdb.Set(ctx, key, value, ttl)
}

// Clear flushes the cache database. The client is expected to point at a
// database reserved for role entries.
func (c *RedisCache) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.rdb.FlushDB(ctx)
}

var _ Cache = (*RedisCache)(nil)
