package models

import "time"

// OrderStatus is the fulfillment state of an order. Transitions only move
// forward: Pending -> Shipped -> Delivered. Delivered is terminal.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
)

// Next returns the status that follows s. Delivered saturates: advancing it
// returns Delivered again.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusPending:
		return StatusShipped
	case StatusShipped:
		return StatusDelivered
	default:
		return StatusDelivered
	}
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// OrderItem represents a single line within an order. PricePerItem is the
// unit price snapshotted when the item was selected; later catalog price
// edits do not affect it.
type OrderItem struct {
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	PricePerItem int64  `json:"price_per_item"`
}

// Order represents a customer order in the ledger.
type Order struct {
	ID           string      `json:"id"` // e.g. "JS-1024"
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"` // denormalized copy
	Date         time.Time   `json:"date"`
	Items        []OrderItem `json:"items"`
	Total        int64       `json:"total"` // always Σ quantity × price_per_item
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
