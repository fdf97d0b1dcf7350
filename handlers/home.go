package handlers

import (
	"math/rand"

	"github.com/gin-gonic/gin"
	"github.com/harutrip/harutrip/backend/go-services/internal/fortune"
	"github.com/harutrip/harutrip/backend/go-services/internal/weather"
	"github.com/harutrip/harutrip/backend/go-services/pkg/logger"
)

// HomeHandler composes the landing-page payload: today's fortune plus
// current weather for a random sample of cities.
type HomeHandler struct {
	fortunes *fortune.Service
	weather  *weather.Client
	dev      bool
}

func NewHomeHandler(fortunes *fortune.Service, w *weather.Client, dev bool) *HomeHandler {
	return &HomeHandler{fortunes: fortunes, weather: w, dev: dev}
}

func (h *HomeHandler) Register(r *gin.Engine) {
	r.GET("/api/fortune", h.todaysFortune)
	r.GET("/api/home-data", h.homeData)
}

// GET /api/fortune. Nil data is the normal "no fortune published today"
// case, not an error; the page renders a neutral fallback.
func (h *HomeHandler) todaysFortune(c *gin.Context) {
	f, err := h.fortunes.Today(c.Request.Context())
	observe("fortune.today", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondOK(c, f)
}

type cityWeather struct {
	Name        string        `json:"name"`
	WeatherInfo *weather.Info `json:"weatherInfo"`
}

// GET /api/home-data
func (h *HomeHandler) homeData(c *gin.Context) {
	ctx := c.Request.Context()

	f, err := h.fortunes.Today(ctx)
	observe("fortune.today", err)
	if err != nil {
		// the fortune is decorative on the home page; degrade to none
		logger.Warnf("home-data fortune lookup failed: %v", err)
		f = nil
	}

	cities := make([]weather.City, len(weather.HomeCities))
	copy(cities, weather.HomeCities)
	rand.Shuffle(len(cities), func(i, j int) { cities[i], cities[j] = cities[j], cities[i] })
	if len(cities) > 3 {
		cities = cities[:3]
	}

	out := make([]cityWeather, 0, len(cities))
	for _, city := range cities {
		info, err := h.weather.ByCity(ctx, city.Query)
		if err != nil {
			// a single city failing never fails the page
			logger.Warnf("home-data weather for %s failed: %v", city.Query, err)
			info = nil
		}
		out = append(out, cityWeather{Name: city.Name, WeatherInfo: info})
	}

	respondOK(c, gin.H{"randomCitiesWeather": out, "todaysFortune": f})
}
