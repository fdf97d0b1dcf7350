package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harutrip/harutrip/backend/go-services/internal/content"
	"github.com/harutrip/harutrip/backend/go-services/internal/content/service"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"github.com/harutrip/harutrip/backend/go-services/internal/storage"
)

// AdminHandler carries the development conveniences: sample-content
// insertion and image uploads backing imageUrl values. Not registered in
// production.
type AdminHandler struct {
	contents *service.Service
	images   *storage.ImageStore
	dev      bool
}

func NewAdminHandler(contents *service.Service, images *storage.ImageStore, dev bool) *AdminHandler {
	return &AdminHandler{contents: contents, images: images, dev: dev}
}

func (h *AdminHandler) Register(r *gin.Engine) {
	r.POST("/api/admin/sample-content", h.addSample)
	r.POST("/api/admin/images", h.uploadImage)
}

// POST /api/admin/sample-content inserts a published document for local
// testing; payload is taken as-is, is_published forced true.
func (h *AdminHandler) addSample(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondErr(c, errs.Validation("request body must be a JSON object"), h.dev)
		return
	}
	body["is_published"] = true
	id, err := h.contents.AddSample(c.Request.Context(), content.RawDoc{Data: body})
	observe("contents.insert", err)
	if err != nil {
		respondErr(c, err, h.dev)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"id": id}})
}

// POST /api/admin/images takes a multipart "file" field and returns the public URL.
func (h *AdminHandler) uploadImage(c *gin.Context) {
	if h.images == nil {
		respondErr(c, errs.Validation("image storage is not configured"), h.dev)
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		respondErr(c, errs.Validation("multipart field 'file' is required"), h.dev)
		return
	}
	src, err := file.Open()
	if err != nil {
		respondErr(c, errs.Validation("could not read uploaded file"), h.dev)
		return
	}
	defer src.Close()

	key := fmt.Sprintf("uploads/%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := h.images.Upload(c.Request.Context(), key, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		respondErr(c, errs.Upstream("image upload failed", err), h.dev)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"imageUrl": url}})
}
