package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, "h:"), mr
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := map[string]string{"city": "서울"}
	require.NoError(t, c.Set(ctx, "k", in, time.Minute))

	var out map[string]string
	hit, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, in, out)
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)
	var out map[string]string
	hit, err := c.Get(context.Background(), "absent", &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestSetAppliesPrefixAndTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", 1, 10*time.Minute))

	require.True(t, mr.Exists("h:k"))
	require.Equal(t, 10*time.Minute, mr.TTL("h:k"))

	// entries expire
	mr.FastForward(11 * time.Minute)
	var out int
	hit, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var out string
	hit, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	var out string
	hit, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, hit)
	require.NoError(t, c.Delete(ctx, "k"))
}
