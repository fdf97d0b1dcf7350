package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"github.com/harutrip/harutrip/backend/go-services/internal/weather"
)

// WeatherHandler proxies the third-party weather API.
type WeatherHandler struct {
	client *weather.Client
	dev    bool
}

func NewWeatherHandler(client *weather.Client, dev bool) *WeatherHandler {
	return &WeatherHandler{client: client, dev: dev}
}

func (h *WeatherHandler) Register(r *gin.Engine) {
	r.GET("/api/weather", h.current)
}

// GET /api/weather?lat=&lon=
func (h *WeatherHandler) current(c *gin.Context) {
	lat, lon := c.Query("lat"), c.Query("lon")
	if lat == "" || lon == "" {
		respondErr(c, errs.Validation("latitude and longitude are required"), h.dev)
		return
	}
	if !h.client.Configured() {
		respondErr(c, errs.Upstream("weather API key is not configured", nil), h.dev)
		return
	}

	info, err := h.client.ByCoordinates(c.Request.Context(), lat, lon)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondOK(c, info)
}
