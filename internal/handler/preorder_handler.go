package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/service"
	"github.com/sweetline/shop-api/internal/utils"
)

// PreorderCreator creates event preorders from validated requests.
type PreorderCreator interface {
	Create(req *service.CreatePreorderRequest) (*models.Preorder, error)
}

// PreorderHandler handles the preorder creation endpoint.
type PreorderHandler struct {
	preorders PreorderCreator
}

// NewPreorderHandler constructs a PreorderHandler.
func NewPreorderHandler(preorders PreorderCreator) *PreorderHandler {
	return &PreorderHandler{preorders: preorders}
}

// CreatePreorder handles POST /api/preorders.
func (h *PreorderHandler) CreatePreorder(c *gin.Context) {
	var req service.CreatePreorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "Invalid request body", err)
		return
	}

	preorder, err := h.preorders.Create(&req)
	if err != nil {
		if errors.Is(err, utils.ErrMissingFields) {
			utils.Error(c, 400, err.Error())
			return
		}
		utils.ErrorWithDetail(c, 500, "Failed to create preorder", err)
		return
	}

	c.JSON(201, gin.H{
		"success":    true,
		"preorderId": preorder.ID,
		"message":    "Preorder created successfully",
	})
}
