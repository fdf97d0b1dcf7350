package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/harutrip/harutrip/backend/go-services/internal/cache"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"github.com/harutrip/harutrip/backend/go-services/pkg/logger"
	"github.com/harutrip/harutrip/backend/go-services/pkg/metrics"
)

// Info is the reduced weather payload served to the UI.
type Info struct {
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Weather     string  `json:"weather"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	City        string  `json:"city"`
}

// upstreamPayload mirrors the subset of the OpenWeatherMap response we use.
type upstreamPayload struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Client proxies the OpenWeatherMap current-weather API with a bounded
// timeout and a short-lived response cache. A timeout or upstream failure
// is recoverable: the UI collapses the widget instead of blocking the page.
type Client struct {
	apiKey   string
	baseURL  string
	http     *http.Client
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewClient(apiKey, baseURL string, timeout time.Duration, c *cache.Cache, cacheTTL time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// Configured reports whether an upstream API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

// ByCoordinates fetches current weather for a lat/lon pair.
func (c *Client) ByCoordinates(ctx context.Context, lat, lon string) (*Info, error) {
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	return c.fetch(ctx, "coord:"+lat+","+lon, q)
}

// ByCity fetches current weather for a city query like "Seoul,KR".
func (c *Client) ByCity(ctx context.Context, city string) (*Info, error) {
	q := url.Values{}
	q.Set("q", city)
	return c.fetch(ctx, "city:"+city, q)
}

func (c *Client) fetch(ctx context.Context, cacheKey string, q url.Values) (*Info, error) {
	var cached Info
	hit, err := c.cache.Get(ctx, "weather:"+cacheKey, &cached)
	if err != nil {
		logger.Warnf("weather cache read failed: %v", err)
	}
	if hit {
		metrics.CacheHits.WithLabelValues("weather").Inc()
		return &cached, nil
	}
	metrics.CacheMisses.WithLabelValues("weather").Inc()

	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("lang", "kr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errs.Upstream("weather request build failed", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Upstream("weather service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Upstream(fmt.Sprintf("weather service returned %d", resp.StatusCode), nil)
	}

	var payload upstreamPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.Upstream("weather response malformed", err)
	}
	if len(payload.Weather) == 0 {
		return nil, errs.Upstream("weather response missing conditions", nil)
	}

	info := &Info{
		Temp:        payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Weather:     payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		Icon:        fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", payload.Weather[0].Icon),
		City:        payload.Name,
	}
	if err := c.cache.Set(ctx, "weather:"+cacheKey, info, c.cacheTTL); err != nil {
		logger.Warnf("weather cache write failed: %v", err)
	}
	return info, nil
}

// City is an entry of the fixed home-page city list.
type City struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// HomeCities is the fixed list the home page samples from.
var HomeCities = []City{
	{Name: "서울", Query: "Seoul,KR"},
	{Name: "부산", Query: "Busan,KR"},
	{Name: "대구", Query: "Daegu,KR"},
	{Name: "대전", Query: "Daejeon,KR"},
	{Name: "광주", Query: "Gwangju,KR"},
	{Name: "춘천", Query: "Chuncheon,KR"},
	{Name: "태백", Query: "Taebaek,KR"},
	{Name: "제주", Query: "Jeju,KR"},
	{Name: "속초", Query: "Sokcho,KR"},
}
