package repositories

import (
	"fmt"
	"sync"
	"time"

	"jewelstack/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// Orders are kept in a slice, most-recent-first, so the ledger reads back
// in submission order.
type MockOrderRepository struct {
	orders []models.Order
	nextID int
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		nextID: 1026, // continue after the historical JS-10xx range
	}
}

// GetAll returns all orders, most recent first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, len(r.orders))
	copy(orderList, r.orders)
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
}

// Create prepends a new order to the ledger. An empty ID gets the next
// "JS-<n>" ledger number.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = fmt.Sprintf("JS-%d", r.nextID)
		r.nextID++
	}
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			return fmt.Errorf("order with ID %s already exists", order.ID)
		}
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders = append([]models.Order{*order}, r.orders...)
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("order with ID %s not found for status update: %w", id, models.ErrNotFound)
}

// Delete removes an order from the ledger.
func (r *MockOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order with ID %s not found for deletion: %w", id, models.ErrNotFound)
}
