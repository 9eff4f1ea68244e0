package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/sweetline/shop-api/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAllWithCounts returns all categories ordered by name, each carrying the
// number of active products it contains.
func (r *CategoryRepository) GetAllWithCounts() ([]models.Category, error) {
	const q = `
        SELECT c.id, c.name, c.slug, c.created_at,
               COUNT(p.id) AS product_count
        FROM categories c
        LEFT JOIN products p ON p.category_id = c.id AND p.is_active = true
        GROUP BY c.id, c.name, c.slug, c.created_at
        ORDER BY c.name`

	var categories []models.Category
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}
