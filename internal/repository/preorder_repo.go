package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/sweetline/shop-api/internal/models"
)

// PreorderRepository handles data access for event preorders.
type PreorderRepository struct {
	db *sqlx.DB
}

// NewPreorderRepository creates a new PreorderRepository.
func NewPreorderRepository(db *sqlx.DB) *PreorderRepository {
	return &PreorderRepository{db: db}
}

// nullableJSON converts an empty raw message to nil for proper NULL handling
// in PostgreSQL jsonb columns.
func nullableJSON(v []byte) interface{} {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Create inserts a new preorder row. On success p.ID and p.CreatedAt are
// populated.
func (r *PreorderRepository) Create(p *models.Preorder) error {
	const q = `
        INSERT INTO preorders (
            customer_id, event_type, event_date, event_time,
            guest_count, budget_range, selected_desserts, special_requests
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	return r.db.QueryRowx(q,
		p.CustomerID,
		p.EventType,
		p.EventDate,
		p.EventTime,
		p.GuestCount,
		p.BudgetRange,
		nullableJSON(p.SelectedDesserts),
		p.SpecialRequests,
	).Scan(&p.ID, &p.CreatedAt)
}
