package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/repository"
)

type mockCategoryStore struct {
	categories []models.Category
	err        error
}

func (m *mockCategoryStore) GetAllWithCounts() ([]models.Category, error) {
	return m.categories, m.err
}

type mockProductStore struct {
	filter   repository.ProductFilter
	products []models.Product
	err      error
}

func (m *mockProductStore) GetActive(filter repository.ProductFilter) ([]models.Product, error) {
	m.filter = filter
	return m.products, m.err
}

func TestGetProductsNormalizesFilters(t *testing.T) {
	products := &mockProductStore{}
	svc := NewCatalogService(&mockCategoryStore{}, products)

	t.Run("all means no category filter", func(t *testing.T) {
		_, err := svc.GetProducts("all", "", 0)
		require.NoError(t, err)
		assert.Equal(t, "", products.filter.CategorySlug)
	})

	t.Run("default limit", func(t *testing.T) {
		_, err := svc.GetProducts("", "", 0)
		require.NoError(t, err)
		assert.Equal(t, 50, products.filter.Limit)
	})

	t.Run("limit clamped", func(t *testing.T) {
		_, err := svc.GetProducts("", "", 5000)
		require.NoError(t, err)
		assert.Equal(t, 200, products.filter.Limit)
	})

	t.Run("filters pass through", func(t *testing.T) {
		_, err := svc.GetProducts("cakes", "chocolate", 10)
		require.NoError(t, err)
		assert.Equal(t, "cakes", products.filter.CategorySlug)
		assert.Equal(t, "chocolate", products.filter.Search)
		assert.Equal(t, 10, products.filter.Limit)
	})
}

func TestGetCategoriesPassthrough(t *testing.T) {
	categories := &mockCategoryStore{categories: []models.Category{
		{ID: 1, Name: "Cakes", Slug: "cakes", ProductCount: 4},
	}}
	svc := NewCatalogService(categories, &mockProductStore{})

	got, err := svc.GetCategories()

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ProductCount)
}

func TestCatalogErrorsPropagate(t *testing.T) {
	boom := errors.New("relation does not exist")
	svc := NewCatalogService(
		&mockCategoryStore{err: boom},
		&mockProductStore{err: boom},
	)

	_, err := svc.GetCategories()
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetProducts("", "", 0)
	assert.ErrorIs(t, err, boom)
}
