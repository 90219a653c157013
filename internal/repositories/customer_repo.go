package repositories

import (
	"jewelstack/internal/models"
)

// CustomerRepository defines the interface for customer directory access.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	GetByID(id string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
}
