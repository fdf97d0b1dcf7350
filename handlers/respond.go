package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harutrip/harutrip/backend/go-services/internal/content"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"github.com/harutrip/harutrip/backend/go-services/pkg/logger"
	"github.com/harutrip/harutrip/backend/go-services/pkg/metrics"
)

// Every endpoint answers the same JSON envelope: {success, data?, error?}.
// List endpoints add a pagination block.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondPage(c *gin.Context, page *content.Page) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    page.Docs,
		"pagination": gin.H{
			"hasNext":       page.HasNext,
			"lastVisibleId": page.LastVisibleID,
			"size":          page.Size,
		},
	})
}

// respondErr maps the error taxonomy to HTTP statuses. Underlying detail is
// only exposed outside production. A canceled request (client navigated
// away) gets no body at all; it is not an error.
func respondErr(c *gin.Context, err error, dev bool) {
	if c.Request.Context().Err() != nil {
		c.Abort()
		return
	}
	status := errs.Status(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	body := gin.H{"success": false, "error": errs.Message(err)}
	if dev {
		body["details"] = err.Error()
	}
	c.JSON(status, body)
}

// observe records a store query outcome for the metrics endpoint.
func observe(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		if errors.Is(err, errs.ErrNotFound) {
			outcome = "not_found"
		}
	}
	metrics.StoreQueries.WithLabelValues(op, outcome).Inc()
}
