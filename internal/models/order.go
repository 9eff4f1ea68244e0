package models

import "time"

// OrderStatus enumerates order lifecycle states. This API only ever creates
// orders in StatusNew; the rest of the lifecycle is managed elsewhere.
type OrderStatus string

const (
	StatusNew        OrderStatus = "new"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Order is a customer order with its generated human-facing order number.
type Order struct {
	ID              int         `db:"id" json:"id"`
	CustomerID      *int        `db:"customer_id" json:"customer_id,omitempty"`
	OrderNumber     string      `db:"order_number" json:"order_number"`
	TotalAmount     float64     `db:"total_amount" json:"total_amount"`
	Notes           *string     `db:"notes" json:"notes,omitempty"`
	DeliveryAddress *string     `db:"delivery_address" json:"delivery_address,omitempty"`
	DeliveryDate    *string     `db:"delivery_date" json:"delivery_date,omitempty"`
	Status          OrderStatus `db:"status" json:"status"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
}

// OrderItem snapshots a product at order time. TotalPrice is computed by the
// service (quantity × unit price), not by the database.
type OrderItem struct {
	ID          int     `db:"id" json:"id"`
	OrderID     int     `db:"order_id" json:"order_id"`
	ProductID   int     `db:"product_id" json:"product_id"`
	ProductName string  `db:"product_name" json:"product_name"`
	Quantity    int     `db:"quantity" json:"quantity"`
	UnitPrice   float64 `db:"unit_price" json:"unit_price"`
	TotalPrice  float64 `db:"total_price" json:"total_price"`
}
