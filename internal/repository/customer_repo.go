package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/sweetline/shop-api/internal/models"
)

// CustomerRepository handles data access for customers. Phone is the natural
// key: inserts conflict-resolve against the unique phone constraint.
type CustomerRepository struct {
	db *sqlx.DB
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// UpsertByPhone inserts a customer or, when the phone already exists, updates
// the name and bumps updated_at. Email is kept from the first submission on
// the conflict path. Returns the customer id either way.
func (r *CustomerRepository) UpsertByPhone(cust *models.Customer) (int, error) {
	const q = `
        INSERT INTO customers (name, phone, email)
        VALUES ($1, $2, $3)
        ON CONFLICT (phone) DO UPDATE SET
            name = EXCLUDED.name,
            updated_at = NOW()
        RETURNING id`

	var id int
	if err := r.db.QueryRowx(q, cust.Name, cust.Phone, cust.Email).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
