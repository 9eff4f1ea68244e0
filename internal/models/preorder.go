package models

import (
	"encoding/json"
	"time"
)

// Preorder is an event booking request (weddings, birthdays, corporate
// events). SelectedDesserts is stored as JSONB.
type Preorder struct {
	ID               int             `db:"id" json:"id"`
	CustomerID       *int            `db:"customer_id" json:"customer_id,omitempty"`
	EventType        string          `db:"event_type" json:"event_type"`
	EventDate        string          `db:"event_date" json:"event_date"`
	EventTime        *string         `db:"event_time" json:"event_time,omitempty"`
	GuestCount       *int            `db:"guest_count" json:"guest_count,omitempty"`
	BudgetRange      *string         `db:"budget_range" json:"budget_range,omitempty"`
	SelectedDesserts json.RawMessage `db:"selected_desserts" json:"selected_desserts,omitempty"`
	SpecialRequests  *string         `db:"special_requests" json:"special_requests,omitempty"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}
