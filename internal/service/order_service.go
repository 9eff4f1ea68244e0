package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/utils"
)

// orderNumberPrefix is the human-facing prefix on generated order numbers.
const orderNumberPrefix = "SL"

// OrderStore persists an order with its items and the optional customer
// upsert as one atomic unit.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order, items []models.OrderItem, customer *models.Customer) error
}

// CustomerInfo is the customer block shared by order and preorder requests.
type CustomerInfo struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// OrderItemRequest is a single line item in an order request.
type OrderItemRequest struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest is the typed body of POST /api/orders.
type CreateOrderRequest struct {
	Customer        CustomerInfo       `json:"customer" binding:"required"`
	Items           []OrderItemRequest `json:"items"`
	TotalAmount     float64            `json:"totalAmount"`
	Notes           *string            `json:"notes"`
	DeliveryAddress *string            `json:"deliveryAddress"`
	DeliveryDate    *string            `json:"deliveryDate"`
}

// OrderService handles order creation business logic.
type OrderService struct {
	orders OrderStore
}

// NewOrderService constructs an OrderService.
func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// Create validates the request, computes line totals, generates an order
// number, and persists everything in a single transaction. Validation runs
// before any database work.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, utils.ErrOrderWithoutItems
	}

	order := &models.Order{
		OrderNumber:     generateOrderNumber(),
		TotalAmount:     req.TotalAmount,
		Notes:           req.Notes,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		Status:          models.StatusNew,
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID:   it.ID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
			TotalPrice:  float64(it.Quantity) * it.Price,
		})
	}

	var customer *models.Customer
	if req.Customer.Phone != "" {
		customer = &models.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
		}
	}

	if err := s.orders.Create(ctx, order, items, customer); err != nil {
		return nil, err
	}
	return order, nil
}

// generateOrderNumber builds an order number from the last 8 digits of the
// current unix-millisecond clock plus a short random suffix. The suffix
// closes the collision window between orders created in the same millisecond.
func generateOrderNumber() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("%s-%s-%s", orderNumberPrefix, ms, suffix)
}
