package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/utils"
)

// SettingsProvider serves the re-keyed settings map.
type SettingsProvider interface {
	GetAll(ctx context.Context) (map[string]models.SettingValue, error)
}

// SettingsHandler handles the settings endpoint.
type SettingsHandler struct {
	settings SettingsProvider
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(settings SettingsProvider) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings handles GET /api/settings.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetAll(c.Request.Context())
	if err != nil {
		utils.ErrorWithDetail(c, 500, "Failed to fetch settings", err)
		return
	}

	c.JSON(200, gin.H{
		"success":  true,
		"settings": settings,
	})
}
