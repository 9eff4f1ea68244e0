package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// HealthRepository runs the trivial round-trip query behind the health check.
type HealthRepository struct {
	db *sqlx.DB
}

// NewHealthRepository creates a new HealthRepository.
func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Check returns the database's current time and server version.
func (r *HealthRepository) Check() (time.Time, string, error) {
	const q = `SELECT NOW() AS now, version() AS version`

	var row struct {
		Now     time.Time `db:"now"`
		Version string    `db:"version"`
	}
	if err := r.db.Get(&row, q); err != nil {
		return time.Time{}, "", err
	}
	return row.Now, row.Version, nil
}
