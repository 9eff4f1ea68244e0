package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/utils"
)

type mockOrderStore struct {
	calls    int
	order    *models.Order
	items    []models.OrderItem
	customer *models.Customer
	err      error
}

func (m *mockOrderStore) Create(ctx context.Context, order *models.Order, items []models.OrderItem, customer *models.Customer) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.order = order
	m.items = items
	m.customer = customer
	order.ID = 42
	if customer != nil {
		id := 7
		order.CustomerID = &id
	}
	return nil
}

func orderRequest() *CreateOrderRequest {
	email := "mira@example.com"
	return &CreateOrderRequest{
		Customer: CustomerInfo{Name: "Mira", Phone: "+15550001", Email: &email},
		Items: []OrderItemRequest{
			{ID: 1, Name: "Tiramisu", Quantity: 2, Price: 6.5},
			{ID: 3, Name: "Eclair", Quantity: 3, Price: 4.0},
		},
		TotalAmount: 25.0,
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	store := &mockOrderStore{}
	svc := NewOrderService(store)

	req := orderRequest()
	req.Items = nil

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, utils.ErrOrderWithoutItems)
	assert.Equal(t, 0, store.calls, "validation must run before any database work")
}

func TestCreateOrderComputesLineTotals(t *testing.T) {
	store := &mockOrderStore{}
	svc := NewOrderService(store)

	order, err := svc.Create(context.Background(), orderRequest())

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, models.StatusNew, order.Status)
	assert.Equal(t, 25.0, order.TotalAmount)

	require.Len(t, store.items, 2)
	assert.Equal(t, 13.0, store.items[0].TotalPrice)
	assert.Equal(t, 12.0, store.items[1].TotalPrice)
	assert.Equal(t, "Tiramisu", store.items[0].ProductName)
	assert.Equal(t, 1, store.items[0].ProductID)
}

func TestCreateOrderPassesCustomerWhenPhonePresent(t *testing.T) {
	store := &mockOrderStore{}
	svc := NewOrderService(store)

	order, err := svc.Create(context.Background(), orderRequest())

	require.NoError(t, err)
	require.NotNil(t, store.customer)
	assert.Equal(t, "+15550001", store.customer.Phone)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, 7, *order.CustomerID)
}

func TestCreateOrderSkipsCustomerWithoutPhone(t *testing.T) {
	store := &mockOrderStore{}
	svc := NewOrderService(store)

	req := orderRequest()
	req.Customer.Phone = ""

	order, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, store.customer)
	assert.Nil(t, order.CustomerID)
}

func TestCreateOrderPropagatesStoreError(t *testing.T) {
	store := &mockOrderStore{err: errors.New("deadlock detected")}
	svc := NewOrderService(store)

	_, err := svc.Create(context.Background(), orderRequest())

	assert.EqualError(t, err, "deadlock detected")
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^SL-\d{8}-[0-9A-F]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := generateOrderNumber()
		assert.Regexp(t, pattern, n)
		seen[n] = true
	}
	// The random suffix keeps same-millisecond numbers distinct.
	assert.Greater(t, len(seen), 90)
}
