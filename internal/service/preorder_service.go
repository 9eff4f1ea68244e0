package service

import (
	"encoding/json"

	"github.com/sweetline/shop-api/internal/models"
	"github.com/sweetline/shop-api/internal/utils"
)

// PreorderStore persists preorder rows.
type PreorderStore interface {
	Create(p *models.Preorder) error
}

// CustomerStore provides the insert-or-update-by-phone operation used by the
// preorder path.
type CustomerStore interface {
	UpsertByPhone(cust *models.Customer) (int, error)
}

// CreatePreorderRequest is the typed body of POST /api/preorders.
type CreatePreorderRequest struct {
	Customer         *CustomerInfo   `json:"customer"`
	EventType        string          `json:"eventType"`
	EventDate        string          `json:"eventDate"`
	EventTime        *string         `json:"eventTime"`
	GuestCount       *int            `json:"guestCount"`
	BudgetRange      *string         `json:"budgetRange"`
	SelectedDesserts json.RawMessage `json:"selectedDesserts"`
	SpecialRequests  *string         `json:"specialRequests"`
}

// PreorderService handles event preorder creation.
type PreorderService struct {
	preorders PreorderStore
	customers CustomerStore
}

// NewPreorderService constructs a PreorderService.
func NewPreorderService(preorders PreorderStore, customers CustomerStore) *PreorderService {
	return &PreorderService{preorders: preorders, customers: customers}
}

// Create validates the request, upserts the customer when a phone is present,
// and inserts the preorder row. The two statements run independently; there
// is no multi-statement transaction on this path.
func (s *PreorderService) Create(req *CreatePreorderRequest) (*models.Preorder, error) {
	if req.Customer == nil || req.EventType == "" || req.EventDate == "" {
		return nil, utils.ErrMissingFields
	}

	preorder := &models.Preorder{
		EventType:        req.EventType,
		EventDate:        req.EventDate,
		EventTime:        req.EventTime,
		GuestCount:       req.GuestCount,
		BudgetRange:      req.BudgetRange,
		SelectedDesserts: req.SelectedDesserts,
		SpecialRequests:  req.SpecialRequests,
	}

	if req.Customer.Phone != "" {
		id, err := s.customers.UpsertByPhone(&models.Customer{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
		})
		if err != nil {
			return nil, err
		}
		preorder.CustomerID = &id
	}

	if err := s.preorders.Create(preorder); err != nil {
		return nil, err
	}
	return preorder, nil
}
