package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>harutrip API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public read surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "harutrip", "version": "v0.1.0" },
  "paths": {
    "/api/contents": {
      "get": {
        "summary": "List published content in a category (cursor-paginated)",
        "parameters": [
          { "name": "category", "in": "query", "schema": {"type": "string"}, "description": "omit to list all published content" },
          { "name": "pageSize", "in": "query", "schema": {"type": "integer", "default": 10, "maximum": 50} },
          { "name": "lastVisibleId", "in": "query", "schema": {"type": "string"} },
          { "name": "tags", "in": "query", "schema": {"type": "string"}, "description": "comma-separated, all must match" }
        ],
        "responses": { "200": { "description": "envelope with docs and pagination block" }, "400": { "description": "invalid cursor" } }
      }
    },
    "/api/contents/{id}": {
      "get": { "summary": "Get one published document, normalized", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type": "string"} } ], "responses": { "200": { "description": "document" }, "404": { "description": "not found or unpublished" } } }
    },
    "/api/contents/{id}/view": {
      "post": { "summary": "Record a page view", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type": "string"} } ], "responses": { "200": { "description": "recorded" } } }
    },
    "/api/contents/{id}/like": {
      "post": { "summary": "Toggle the caller's like", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"userId":{"type":"string"}},"required":["userId"]}}}}, "responses": { "200": { "description": "likeCount and isLiked" }, "400": { "description": "userId missing" } } }
    },
    "/api/accommodations": { "get": { "summary": "Typed lodging list", "responses": { "200": { "description": "items" } } } },
    "/api/attractions": { "get": { "summary": "Typed attraction list", "responses": { "200": { "description": "items" } } } },
    "/api/categories": { "get": { "summary": "Distinct categories across published content", "responses": { "200": { "description": "labels" } } } },
    "/api/recommendations": { "get": { "summary": "Curated recommendations", "responses": { "200": { "description": "documents" } } } },
    "/api/shopping": { "get": { "summary": "Product catalog with filters and sort", "responses": { "200": { "description": "products with salePrice" } } } },
    "/api/products/{id}": { "get": { "summary": "One product", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type": "string"} } ], "responses": { "200": { "description": "product" }, "404": { "description": "not found" } } } },
    "/api/fortune": { "get": { "summary": "Today's fortune (null when none published)", "responses": { "200": { "description": "fortune or null" } } } },
    "/api/home-data": { "get": { "summary": "Home page payload: fortune plus weather for three random cities", "responses": { "200": { "description": "composite payload" } } } },
    "/api/weather": { "get": { "summary": "Current weather by coordinates", "parameters": [ { "name": "lat", "in": "query", "required": true, "schema": {"type": "string"} }, { "name": "lon", "in": "query", "required": true, "schema": {"type": "string"} } ], "responses": { "200": { "description": "reduced weather payload" }, "400": { "description": "missing coordinates" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
