package utils

import "errors"

// Validation errors surfaced to clients verbatim as 400 responses.
var (
	ErrOrderWithoutItems = errors.New("Order must contain items")
	ErrMissingFields     = errors.New("Required fields missing")
)
