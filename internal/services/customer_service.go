package services

import (
	"fmt"
	"time"

	"jewelstack/internal/models"
	"jewelstack/internal/repositories"

	"github.com/google/uuid"
)

// CustomerService handles business logic for the customer directory.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// GetAllCustomers retrieves all customers.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.repo.GetAll()
}

// GetCustomerByID retrieves a single customer by its ID.
func (s *CustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	return s.repo.GetByID(id)
}

// ResolveOrCreate identifies the customer for an order. With an existing ID
// it bumps TotalOrders and refreshes LastPurchase; with a new name it
// inserts a fresh customer with TotalOrders=1. Exactly one of customerID
// and newName must be set.
func (s *CustomerService) ResolveOrCreate(customerID, newName, phone, email string) (*models.Customer, error) {
	now := time.Now()

	if customerID != "" {
		customer, err := s.repo.GetByID(customerID)
		if err != nil {
			return nil, err
		}
		customer.TotalOrders++
		customer.LastPurchase = now
		if err := s.repo.Update(customer); err != nil {
			return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
		}
		return customer, nil
	}

	if newName == "" {
		return nil, fmt.Errorf("customer id or new customer name is required: %w", models.ErrValidation)
	}

	customer := &models.Customer{
		ID:           uuid.New().String(),
		Name:         newName,
		LastPurchase: now,
		TotalOrders:  1,
		Phone:        phone,
		Email:        email,
	}
	customer.AvatarURL = fmt.Sprintf("https://i.pravatar.cc/150?u=%s", customer.ID)

	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}
