package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/utils"
)

// CatalogService is the read surface for categories and products.
type CatalogService interface {
	GetCategories() ([]models.Category, error)
	GetProducts(category, search string, limit int) ([]models.Product, error)
}

// CatalogHandler handles category and product listing endpoints.
type CatalogHandler struct {
	catalog CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCategories returns all categories with active-product counts.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.GetCategories()
	if err != nil {
		utils.ErrorWithDetail(c, 500, "Failed to fetch categories", err)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(200, gin.H{
		"success":    true,
		"count":      len(categories),
		"categories": categories,
	})
}

// GetProducts returns active products with optional category, search, and
// limit query parameters.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	products, err := h.catalog.GetProducts(category, search, limit)
	if err != nil {
		utils.ErrorWithDetail(c, 500, "Failed to fetch products", err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(200, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}
