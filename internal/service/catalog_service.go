package service

import (
	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/repository"
)

const (
	defaultProductLimit = 50
	maxProductLimit     = 200
)

// CategoryStore is the data access surface the catalog service needs for
// categories.
type CategoryStore interface {
	GetAllWithCounts() ([]models.Category, error)
}

// ProductStore is the data access surface the catalog service needs for
// products.
type ProductStore interface {
	GetActive(filter repository.ProductFilter) ([]models.Product, error)
}

// CatalogService handles read access to the category and product catalog.
type CatalogService struct {
	categories CategoryStore
	products   ProductStore
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(categories CategoryStore, products ProductStore) *CatalogService {
	return &CatalogService{categories: categories, products: products}
}

// GetCategories returns all categories with their active-product counts.
func (s *CatalogService) GetCategories() ([]models.Category, error) {
	return s.categories.GetAllWithCounts()
}

// GetProducts returns active products matching the given filters. A category
// value of "all" means no category filter; the limit defaults to 50 and is
// clamped to a sane maximum.
func (s *CatalogService) GetProducts(category, search string, limit int) ([]models.Product, error) {
	if category == "all" {
		category = ""
	}
	if limit <= 0 {
		limit = defaultProductLimit
	}
	if limit > maxProductLimit {
		limit = maxProductLimit
	}

	return s.products.GetActive(repository.ProductFilter{
		CategorySlug: category,
		Search:       search,
		Limit:        limit,
	})
}
