package fortune

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/harutrip/harutrip/backend/go-services/internal/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	*MemoryRepo
	reads int
}

func (c *countingRepo) ByDate(ctx context.Context, date string) (*Fortune, error) {
	c.reads++
	return c.MemoryRepo.ByDate(ctx, date)
}

func newTestService(t *testing.T) (*Service, *countingRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := &countingRepo{MemoryRepo: NewMemoryRepo()}
	svc := NewService(repo, cache.New(client, "test:"))
	svc.now = func() time.Time {
		return time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestTodayMissingDateIsNil(t *testing.T) {
	svc, _ := newTestService(t)
	f, err := svc.Today(context.Background())
	require.NoError(t, err)
	require.Nil(t, f)
}

func TestTodayCachesUntilMidnight(t *testing.T) {
	svc, repo := newTestService(t)
	want := Fortune{Date: "2026-08-31", Message: "좋은 일이 생길 거예요", LuckyItem: "우산", LuckyColor: "파랑"}
	require.NoError(t, repo.Upsert(context.Background(), want))

	f, err := svc.Today(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, *f)
	require.Equal(t, 1, repo.reads)

	// second read is served from the cache
	f, err = svc.Today(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, *f)
	require.Equal(t, 1, repo.reads)
}

func TestForDateSeparateKeys(t *testing.T) {
	svc, repo := newTestService(t)
	require.NoError(t, repo.Upsert(context.Background(), Fortune{Date: "2026-09-01", Message: "내일의 운세"}))

	f, err := svc.ForDate(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.Equal(t, "내일의 운세", f.Message)

	f, err = svc.ForDate(context.Background(), "2026-09-02")
	require.NoError(t, err)
	require.Nil(t, f)
}

func TestUntilMidnight(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	require.Equal(t, time.Hour, untilMidnight(now))
}

// A nil cache is transparent: reads always reach the store.
func TestNilCacheDegrades(t *testing.T) {
	repo := &countingRepo{MemoryRepo: NewMemoryRepo()}
	require.NoError(t, repo.Upsert(context.Background(), Fortune{Date: "2026-08-31", Message: "m"}))
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC) }

	for i := 0; i < 2; i++ {
		f, err := svc.Today(context.Background())
		require.NoError(t, err)
		require.Equal(t, "m", f.Message)
	}
	require.Equal(t, 2, repo.reads)
}
