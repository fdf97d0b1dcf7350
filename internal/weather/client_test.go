package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/harutrip/harutrip/backend/go-services/internal/cache"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const upstreamBody = `{
	"name": "Seoul",
	"main": {"temp": 27.4, "feels_like": 29.1, "humidity": 62},
	"weather": [{"main": "Clouds", "description": "구름조금", "icon": "02d"}]
}`

func TestByCoordinatesReshapesUpstream(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"lat":   r.URL.Query().Get("lat"),
			"lon":   r.URL.Query().Get("lon"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
			"lang":  r.URL.Query().Get("lang"),
		}
		w.Write([]byte(upstreamBody))
	}))
	defer srv.Close()

	c := NewClient("key-123", srv.URL, time.Second, nil, time.Minute)
	info, err := c.ByCoordinates(context.Background(), "37.57", "126.98")
	require.NoError(t, err)

	require.Equal(t, "37.57", gotQuery["lat"])
	require.Equal(t, "126.98", gotQuery["lon"])
	require.Equal(t, "key-123", gotQuery["appid"])
	require.Equal(t, "metric", gotQuery["units"])
	require.Equal(t, "kr", gotQuery["lang"])

	require.InDelta(t, 27.4, info.Temp, 1e-9)
	require.InDelta(t, 29.1, info.FeelsLike, 1e-9)
	require.Equal(t, 62, info.Humidity)
	require.Equal(t, "Clouds", info.Weather)
	require.Equal(t, "구름조금", info.Description)
	require.Equal(t, "https://openweathermap.org/img/wn/02d@2x.png", info.Icon)
	require.Equal(t, "Seoul", info.City)
}

func TestByCityUsesQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Busan,KR", r.URL.Query().Get("q"))
		w.Write([]byte(upstreamBody))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, time.Second, nil, time.Minute)
	_, err := c.ByCity(context.Background(), "Busan,KR")
	require.NoError(t, err)
}

func TestUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad", srv.URL, time.Second, nil, time.Minute)
	_, err := c.ByCoordinates(context.Background(), "37", "126")
	require.Error(t, err)
	require.Equal(t, http.StatusInternalServerError, errs.Status(err))
}

func TestMalformedUpstreamBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Seoul", "weather": []}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, time.Second, nil, time.Minute)
	_, err := c.ByCoordinates(context.Background(), "37", "126")
	require.Error(t, err)
}

func TestSecondFetchServedFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(upstreamBody))
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewClient("key", srv.URL, time.Second, cache.New(client, "t:"), 10*time.Minute)
	for i := 0; i < 2; i++ {
		info, err := c.ByCoordinates(context.Background(), "37.57", "126.98")
		require.NoError(t, err)
		require.Equal(t, "Seoul", info.City)
	}
	require.Equal(t, 1, calls)

	// after the TTL the upstream is consulted again
	mr.FastForward(11 * time.Minute)
	_, err := c.ByCoordinates(context.Background(), "37.57", "126.98")
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestConfigured(t *testing.T) {
	require.False(t, NewClient("", "http://x", time.Second, nil, time.Minute).Configured())
	require.True(t, NewClient("k", "http://x", time.Second, nil, time.Minute).Configured())
}
