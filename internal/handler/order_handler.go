package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/service"
	"github.com/sweetline/shop-api/internal/utils"
)

// OrderCreator creates orders from validated requests.
type OrderCreator interface {
	Create(ctx context.Context, req *service.CreateOrderRequest) (*models.Order, error)
}

// OrderHandler handles the order creation endpoint.
type OrderHandler struct {
	orders OrderCreator
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders OrderCreator) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, 400, "Invalid request body", err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, utils.ErrOrderWithoutItems) {
			utils.Error(c, 400, err.Error())
			return
		}
		utils.ErrorWithDetail(c, 500, "Failed to create order", err)
		return
	}

	c.JSON(201, gin.H{
		"success":     true,
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"message":     "Order created successfully",
	})
}
