package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sweetline/shop-api/internal/models"
)

// OrderRepository handles data access for orders and their items.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists an order, its items, and the optional customer upsert in a
// single transaction. The order and all its item rows are written together or
// not at all. On success order.ID, order.CreatedAt and (when a customer was
// supplied) order.CustomerID are populated.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order, items []models.OrderItem, customer *models.Customer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	// Rollback is a no-op after Commit; the deferred call guarantees the
	// connection goes back to the pool on every exit path.
	defer tx.Rollback()

	if customer != nil && customer.Phone != "" {
		const upsertQ = `
            INSERT INTO customers (name, phone, email, address)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (phone) DO UPDATE SET
                name = EXCLUDED.name,
                email = EXCLUDED.email,
                address = EXCLUDED.address,
                updated_at = NOW()
            RETURNING id`

		var customerID int
		if err := tx.QueryRowx(upsertQ, customer.Name, customer.Phone, customer.Email, customer.Address).Scan(&customerID); err != nil {
			return err
		}
		order.CustomerID = &customerID
	}

	const orderQ = `
        INSERT INTO orders (customer_id, order_number, total_amount, notes, delivery_address, delivery_date, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	if err := tx.QueryRowx(orderQ,
		order.CustomerID,
		order.OrderNumber,
		order.TotalAmount,
		order.Notes,
		order.DeliveryAddress,
		order.DeliveryDate,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	const itemQ = `
        INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, total_price)
        VALUES ($1, $2, $3, $4, $5, $6)`

	for i := range items {
		items[i].OrderID = order.ID
		if _, err := tx.Exec(itemQ,
			order.ID,
			items[i].ProductID,
			items[i].ProductName,
			items[i].Quantity,
			items[i].UnitPrice,
			items[i].TotalPrice,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
