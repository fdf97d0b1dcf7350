package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMemoryRateLimitBurstThenReject(t *testing.T) {
	r := newLimitedRouter(RateLimitMiddleware(1, 3))

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code)
	}
	w := hit(r, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "1", w.Header().Get("Retry-After"))
	require.JSONEq(t, `{"success": false, "error": "rate limit exceeded"}`, w.Body.String())
}

func TestMemoryRateLimitPerIP(t *testing.T) {
	r := newLimitedRouter(RateLimitMiddleware(1, 1))

	require.Equal(t, http.StatusOK, hit(r, "10.0.1.1").Code)
	require.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.1.1").Code)
	// a different client gets its own bucket
	require.Equal(t, http.StatusOK, hit(r, "10.0.1.2").Code)
}

func TestRedisRateLimitWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	// zero sustained rate with burst 3 over a long window: exactly 3 allowed
	r := newLimitedRouter(RedisRateLimitMiddleware(client, 0, 3, time.Hour))

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit(r, "10.0.2.1").Code)
	}
	w := hit(r, "10.0.2.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "3600", w.Header().Get("Retry-After"))
}

func TestRedisRateLimitNilClientFallsBack(t *testing.T) {
	r := newLimitedRouter(RedisRateLimitMiddleware(nil, 1, 2, time.Second))

	require.Equal(t, http.StatusOK, hit(r, "10.0.3.1").Code)
	require.Equal(t, http.StatusOK, hit(r, "10.0.3.1").Code)
	require.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.3.1").Code)
}
