package main

import (
	"testing"

	"jewelstack/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	seedCatalog(repo)

	products, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, products, 5)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.ImageURL)
		assert.GreaterOrEqual(t, p.Stock, 0)
	}

	// Seeding is idempotent: a populated catalog is left alone.
	seedCatalog(repo)
	products, err = repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestSeedCustomers(t *testing.T) {
	repo := repositories.NewMockCustomerRepository()

	seedCustomers(repo)

	customers, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, customers, 4)
	for _, c := range customers {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.AvatarURL)
		assert.Greater(t, c.TotalOrders, 0)
		assert.False(t, c.LastPurchase.IsZero())
	}

	seedCustomers(repo)
	customers, err = repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, customers, 4)
}
