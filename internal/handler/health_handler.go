package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker runs a trivial database round-trip.
type HealthChecker interface {
	Check() (time.Time, string, error)
}

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// GetHealth responds with database connectivity status. A query failure is a
// 500 response, never an unhandled error.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	dbTime, dbVersion, err := h.checker.Check()
	if err != nil {
		c.JSON(500, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{
		"status":           "healthy",
		"database":         "connected",
		"timestamp":        dbTime.Format(time.RFC3339),
		"database_version": dbVersion,
	})
}
