package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sweetline/shop-api/internal/models"
)

// ProductFilter holds filters for product listing queries. Empty string
// filters are ignored.
type ProductFilter struct {
	CategorySlug string
	Search       string
	Limit        int
}

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetActive returns active products with optional category-slug and search
// filters, newest first. Parameter indices are computed from which filters
// are present; values are always passed positionally, never concatenated.
func (r *ProductRepository) GetActive(filter ProductFilter) ([]models.Product, error) {
	q := `
        SELECT p.id, p.name, p.description, p.price, p.category_id,
               p.is_active, p.created_at,
               c.name AS category_name, c.slug AS category_slug
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.is_active = true`

	args := []interface{}{}
	argIdx := 1

	if filter.CategorySlug != "" {
		q += fmt.Sprintf(" AND c.slug = $%d", argIdx)
		args = append(args, filter.CategorySlug)
		argIdx++
	}
	if filter.Search != "" {
		q += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	q += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d", argIdx)
	args = append(args, filter.Limit)

	var products []models.Product
	if err := r.db.Select(&products, q, args...); err != nil {
		return nil, err
	}
	return products, nil
}
