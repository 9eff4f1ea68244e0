package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/service"
	"github.com/sweetline/shop-api/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockOrderCreator struct {
	req   *service.CreateOrderRequest
	order *models.Order
	err   error
}

func (m *mockOrderCreator) Create(ctx context.Context, req *service.CreateOrderRequest) (*models.Order, error) {
	m.req = req
	return m.order, m.err
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func orderRouter(creator *mockOrderCreator) *gin.Engine {
	router := gin.New()
	router.POST("/api/orders", NewOrderHandler(creator).CreateOrder)
	return router
}

func TestCreateOrderSuccess(t *testing.T) {
	creator := &mockOrderCreator{order: &models.Order{ID: 5, OrderNumber: "SL-12345678-A1B2"}}
	router := orderRouter(creator)

	w := postJSON(router, "/api/orders", `{
		"customer": {"name": "Mira", "phone": "+15550001"},
		"items": [{"id": 1, "name": "Tiramisu", "quantity": 2, "price": 6.5}],
		"totalAmount": 13.0
	}`)

	assert.Equal(t, 201, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(5), resp["orderId"])
	assert.Equal(t, "SL-12345678-A1B2", resp["orderNumber"])

	require.NotNil(t, creator.req)
	assert.Equal(t, "Mira", creator.req.Customer.Name)
}

func TestCreateOrderEmptyItemsIs400(t *testing.T) {
	creator := &mockOrderCreator{err: utils.ErrOrderWithoutItems}
	router := orderRouter(creator)

	w := postJSON(router, "/api/orders", `{
		"customer": {"name": "Mira", "phone": "+15550001"},
		"items": []
	}`)

	assert.Equal(t, 400, w.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Order must contain items", resp.Error)
}

func TestCreateOrderMalformedBodyIs400(t *testing.T) {
	router := orderRouter(&mockOrderCreator{})

	w := postJSON(router, "/api/orders", `{"customer": `)

	assert.Equal(t, 400, w.Code)
}

func TestCreateOrderStoreFailureIs500(t *testing.T) {
	creator := &mockOrderCreator{err: errors.New("pq: deadlock detected")}
	router := orderRouter(creator)

	w := postJSON(router, "/api/orders", `{
		"customer": {"name": "Mira", "phone": "+15550001"},
		"items": [{"id": 1, "name": "Tiramisu", "quantity": 1, "price": 6.5}]
	}`)

	assert.Equal(t, 500, w.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to create order", resp.Error)
	// Test mode is not release mode, so the detail is exposed.
	assert.Equal(t, "pq: deadlock detected", resp.Details)
}
