package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// availableEndpoints enumerates the public API surface. The list is returned
// by the root endpoint and by the 404 fallback.
var availableEndpoints = []string{
	"GET /",
	"GET /api/health",
	"GET /api/categories",
	"GET /api/products",
	"POST /api/orders",
	"POST /api/preorders",
	"GET /api/settings",
}

// RootHandler serves static service metadata. No database access.
type RootHandler struct {
	version string
}

// NewRootHandler constructs a RootHandler.
func NewRootHandler(version string) *RootHandler {
	return &RootHandler{version: version}
}

// GetRoot returns service metadata and the endpoint listing. Always succeeds.
func (h *RootHandler) GetRoot(c *gin.Context) {
	c.JSON(200, gin.H{
		"name":      "Sweetline Shop API",
		"version":   h.version,
		"status":    "running",
		"platform":  "go",
		"timestamp": time.Now().Format(time.RFC3339),
		"endpoints": availableEndpoints,
	})
}

// NotFound is the fallback for any unmatched method and path.
func NotFound(c *gin.Context) {
	c.JSON(404, gin.H{
		"success":             false,
		"error":               "Endpoint not found",
		"path":                c.Request.URL.Path,
		"available_endpoints": availableEndpoints,
	})
}
