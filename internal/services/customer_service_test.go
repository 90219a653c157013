package services_test

import (
	"testing"

	"jewelstack/internal/models"
	"jewelstack/internal/repositories"
	"jewelstack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_ResolveOrCreate_NewCustomer(t *testing.T) {
	repo := repositories.NewMockCustomerRepository()
	service := services.NewCustomerService(repo)

	customer, err := service.ResolveOrCreate("", "Vikram Singh", "", "vikram@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Vikram Singh", customer.Name)
	assert.Equal(t, 1, customer.TotalOrders)
	assert.Equal(t, "vikram@example.com", customer.Email)
	assert.False(t, customer.LastPurchase.IsZero())
	assert.Contains(t, customer.AvatarURL, customer.ID)

	customers, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCustomerService_ResolveOrCreate_ExistingCustomer(t *testing.T) {
	repo := repositories.NewMockCustomerRepository()
	service := services.NewCustomerService(repo)

	existing := &models.Customer{Name: "Priya Mehta", TotalOrders: 8}
	require.NoError(t, repo.Create(existing))

	customer, err := service.ResolveOrCreate(existing.ID, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, customer.ID)
	assert.Equal(t, 9, customer.TotalOrders)
	assert.False(t, customer.LastPurchase.IsZero())

	customers, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, customers, 1, "no duplicate created")
}

func TestCustomerService_ResolveOrCreate_Unidentified(t *testing.T) {
	repo := repositories.NewMockCustomerRepository()
	service := services.NewCustomerService(repo)

	_, err := service.ResolveOrCreate("", "", "", "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCustomerService_ResolveOrCreate_UnknownID(t *testing.T) {
	repo := repositories.NewMockCustomerRepository()
	service := services.NewCustomerService(repo)

	_, err := service.ResolveOrCreate("no-such-customer", "", "", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
