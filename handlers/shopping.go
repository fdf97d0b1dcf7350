package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harutrip/harutrip/backend/go-services/internal/shopping"
)

// ShoppingHandler serves the product catalog.
type ShoppingHandler struct {
	repo shopping.Repository
	dev  bool
}

func NewShoppingHandler(repo shopping.Repository, dev bool) *ShoppingHandler {
	return &ShoppingHandler{repo: repo, dev: dev}
}

func (h *ShoppingHandler) Register(r *gin.Engine) {
	r.GET("/api/shopping", h.list)
	r.GET("/api/products/:id", h.detail)
}

// GET /api/shopping?category=&minPrice=&maxPrice=&sortBy=&sortOrder=&searchQuery=&freeShipping=&new=&best=&discount=
func (h *ShoppingHandler) list(c *gin.Context) {
	minPrice, _ := strconv.Atoi(c.Query("minPrice"))
	maxPrice, _ := strconv.Atoi(c.Query("maxPrice"))
	f := shopping.Filter{
		Category:     c.Query("category"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		FreeShipping: c.Query("freeShipping") == "true",
		NewOnly:      c.Query("new") == "true",
		BestOnly:     c.Query("best") == "true",
		DiscountOnly: c.Query("discount") == "true",
		SearchQuery:  c.Query("searchQuery"),
		SortBy:       c.DefaultQuery("sortBy", shopping.SortNewest),
		SortAsc:      c.Query("sortOrder") == "asc",
	}

	products, err := h.repo.List(c.Request.Context(), f)
	observe("products.list", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}

	// attach the effective sale price so clients never re-derive discounts
	type listedProduct struct {
		shopping.Product
		SalePrice int `json:"salePrice"`
	}
	out := make([]listedProduct, 0, len(products))
	for _, p := range products {
		out = append(out, listedProduct{Product: p, SalePrice: p.EffectivePrice()})
	}
	respondOK(c, out)
}

// GET /api/products/:id
func (h *ShoppingHandler) detail(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	observe("products.detail", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	respondOK(c, gin.H{"product": p, "salePrice": p.EffectivePrice()})
}
