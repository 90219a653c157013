package models

import "errors"

// Sentinel errors for the two failure kinds the API surfaces. Services wrap
// these with context via fmt.Errorf and %w; handlers map them to HTTP status
// codes with errors.Is.
var (
	// ErrValidation marks a request rejected before any state change:
	// missing customer, empty item list, insufficient stock.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation against a non-existent order,
	// product or customer id.
	ErrNotFound = errors.New("not found")
)
