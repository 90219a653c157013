package repositories

import (
	"jewelstack/internal/models"
)

// ProductRepository defines the interface for catalog data access. Lookups
// against an unknown id return an error wrapping models.ErrNotFound.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
