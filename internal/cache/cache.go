package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small JSON-over-Redis cache used for daily fortunes and
// weather proxy responses. A nil *Cache is a valid no-op cache, so callers
// never branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
	prefix string
}

// New wraps a Redis client. Prefix may be empty.
func New(client *redis.Client, prefix string) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, prefix: prefix}
}

func (c *Cache) key(k string) string { return c.prefix + k }

// Get unmarshals the cached value into dest. The second return is false on
// a miss; cache transport errors are reported as misses as well, the cache
// never fails a request.
func (c *Cache) Get(ctx context.Context, k string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	b, err := c.client.Get(ctx, c.key(k)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores the JSON encoding of v under k with the given TTL.
func (c *Cache) Set(ctx context.Context, k string, v interface{}, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = time.Second
	}
	return c.client.Set(ctx, c.key(k), b, ttl).Err()
}

// Delete removes a cached entry.
func (c *Cache) Delete(ctx context.Context, k string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(k)).Err()
}
