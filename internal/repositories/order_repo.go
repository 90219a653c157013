package repositories

import (
	"jewelstack/internal/models"
)

// OrderRepository defines the interface for ledger data access. GetAll
// returns orders most-recent-first; Create prepends.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	Delete(id string) error
}
