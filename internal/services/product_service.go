package services

import (
	"fmt"
	"math/rand"

	"jewelstack/internal/models"
	"jewelstack/internal/repositories"

	"github.com/google/uuid"
)

// ProductService handles business logic for the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct adds a new catalog item. The ID, the display-only price
// change indicator and a placeholder image are assigned here; stock and
// price are taken as given.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.ID = uuid.New().String()
	product.PriceChange = float64(rand.Intn(200) - 100)
	if product.ImageURL == "" {
		product.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/200", product.ID)
	}
	return s.repo.Create(product)
}

// UpdateProduct replaces the product record matching the given ID. Orders
// referencing it keep their snapshotted per-item prices.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID. Existing orders are not
// cascaded; their lines keep the recorded product id and price.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
