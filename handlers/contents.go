package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harutrip/harutrip/backend/go-services/internal/content"
	"github.com/harutrip/harutrip/backend/go-services/internal/content/service"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
)

// AllowedRecommendationCategories is the fixed set served by
// /api/recommendations; fetched documents outside it are dropped.
var AllowedRecommendationCategories = []string{
	content.LabelTravelCourse,
	content.LabelRestaurant,
	content.LabelShopping,
	content.LabelLodging,
	content.LabelAttraction,
}

// DefaultCategories substitutes for an empty distinct-category scan.
var DefaultCategories = []string{
	content.LabelLodging,
	content.LabelAttraction,
	content.LabelRestaurant,
	content.LabelShopping,
	content.LabelTravelCourse,
}

// ContentHandler serves the published-content read surface.
type ContentHandler struct {
	svc *service.Service
	dev bool
}

func NewContentHandler(svc *service.Service, dev bool) *ContentHandler {
	return &ContentHandler{svc: svc, dev: dev}
}

func (h *ContentHandler) Register(r *gin.Engine) {
	r.GET("/api/contents", h.list)
	r.GET("/api/contents/:id", h.detail)
	r.POST("/api/contents/:id/view", h.recordView)
	r.POST("/api/contents/:id/like", h.toggleLike)
	r.GET("/api/accommodations", h.accommodations)
	r.GET("/api/attractions", h.attractions)
	r.GET("/api/categories", h.categories)
	r.GET("/api/recommendations", h.recommendations)
}

// GET /api/contents?category=&pageSize=&lastVisibleId=&tags=a,b
// An omitted category lists all published content.
func (h *ContentHandler) list(c *gin.Context) {
	category := c.Query("category")
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	cursor := c.Query("lastVisibleId")
	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	page, err := h.svc.ListByCategory(c.Request.Context(), category, pageSize, cursor, tags)
	observe("contents.list", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondPage(c, page)
}

// GET /api/contents/:id
func (h *ContentHandler) detail(c *gin.Context) {
	detail, err := h.svc.GetDetail(c.Request.Context(), c.Param("id"))
	observe("contents.detail", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondOK(c, detail)
}

// POST /api/contents/:id/view
func (h *ContentHandler) recordView(c *gin.Context) {
	err := h.svc.RecordView(c.Request.Context(), c.Param("id"))
	observe("contents.view", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/contents/:id/like {"userId": "..."}
func (h *ContentHandler) toggleLike(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		respondErr(c, errs.Validation("userId is required"), h.dev)
		return
	}
	likes, liked, err := h.svc.ToggleLike(c.Request.Context(), c.Param("id"), req.UserID)
	observe("contents.like", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondOK(c, gin.H{"likeCount": likes, "isLiked": liked})
}

// GET /api/accommodations?limit=
func (h *ContentHandler) accommodations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.svc.Accommodations(c.Request.Context(), limit)
	observe("contents.accommodations", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondOK(c, items)
}

// GET /api/attractions?limit=
func (h *ContentHandler) attractions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.svc.Attractions(c.Request.Context(), limit)
	observe("contents.attractions", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondOK(c, items)
}

// GET /api/categories
func (h *ContentHandler) categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	observe("contents.categories", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	if len(cats) == 0 {
		cats = DefaultCategories
	}
	respondOK(c, cats)
}

// GET /api/recommendations
func (h *ContentHandler) recommendations(c *gin.Context) {
	recs, err := h.svc.Recommendations(c.Request.Context(), AllowedRecommendationCategories)
	observe("contents.recommendations", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondOK(c, recs)
}
