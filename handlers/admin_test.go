package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harutrip/harutrip/backend/go-services/internal/content/repository"
	"github.com/harutrip/harutrip/backend/go-services/internal/content/service"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	r := gin.New()
	NewAdminHandler(service.New(repo), nil, true).Register(r)
	return r, repo
}

// Sample inserts always come out published, whatever the payload claims.
func TestAddSampleForcesPublished(t *testing.T) {
	r, repo := newAdminRouter(t)

	code, env := doJSON(t, r, http.MethodPost, "/api/admin/sample-content", map[string]interface{}{
		"title":        "샘플 숙소",
		"category":     "숙소",
		"is_published": false,
	})
	require.Equal(t, http.StatusCreated, code)
	require.True(t, env.Success)

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.ID)

	doc, err := repo.GetByID(context.Background(), data.ID)
	require.NoError(t, err)
	require.Equal(t, true, doc.Data["is_published"])
}

func TestAddSampleRejectsNonObject(t *testing.T) {
	r, _ := newAdminRouter(t)
	code, env := doJSON(t, r, http.MethodPost, "/api/admin/sample-content", nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.False(t, env.Success)
}

func TestUploadImageUnconfigured(t *testing.T) {
	r, _ := newAdminRouter(t)
	code, env := doJSON(t, r, http.MethodPost, "/api/admin/images", nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "image storage is not configured", env.Error)
}
