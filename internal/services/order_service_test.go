package services_test

import (
	"errors"
	"testing"

	"jewelstack/internal/models"
	"jewelstack/internal/repositories"
	"jewelstack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLedgerFixture wires an order service over in-memory repositories with
// the demo bangle in stock.
func newLedgerFixture(t *testing.T) (*services.OrderService, *repositories.MockProductRepository, *repositories.MockCustomerRepository, *repositories.MockOrderRepository, *models.Product) {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	customerRepo := repositories.NewMockCustomerRepository()
	orderRepo := repositories.NewMockOrderRepository()

	product := &models.Product{
		Name:     "Classic Gold Bangle",
		Category: "Bangle",
		Purity:   models.Purity22K,
		Weight:   15.5,
		Stock:    8,
		Price:    85250,
	}
	require.NoError(t, productRepo.Create(product))

	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, customerService, nil)
	return orderService, productRepo, customerRepo, orderRepo, product
}

func TestOrderService_CreateOrder_DecrementsStockAndComputesTotal(t *testing.T) {
	orderService, productRepo, _, orderRepo, product := newLedgerFixture(t)

	order, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 1, PricePerItem: 85250},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(85250), order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "Rohan Sharma", order.CustomerName)
	assert.Regexp(t, `^JS-\d+$`, order.ID)

	updated, err := productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)

	ledger, err := orderRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, order.ID, ledger[0].ID)
}

func TestOrderService_CreateOrder_MostRecentFirst(t *testing.T) {
	orderService, _, _, orderRepo, product := newLedgerFixture(t)

	first, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items:           []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Priya Mehta",
		Items:           []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	ledger, err := orderRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, second.ID, ledger[0].ID)
	assert.Equal(t, first.ID, ledger[1].ID)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	orderService, productRepo, customerRepo, orderRepo, product := newLedgerFixture(t)

	_, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 10, PricePerItem: 85250},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)

	// Nothing changed: stock intact, no order, no customer.
	updated, err := productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Stock)

	ledger, err := orderRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, ledger)

	customers, err := customerRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestOrderService_CreateOrder_AggregatesDuplicateLines(t *testing.T) {
	orderService, productRepo, _, _, product := newLedgerFixture(t)

	// 5 + 4 of the same product exceeds the 8 in stock even though each
	// line alone would pass.
	_, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 5},
			{ProductID: product.ID, Quantity: 4},
		},
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	updated, err := productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Stock)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	orderService, _, _, _, product := newLedgerFixture(t)

	// No customer identified.
	_, err := orderService.CreateOrder(services.CreateOrderRequest{
		Items: []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	// Empty item list.
	_, err = orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	// Non-positive quantity.
	_, err = orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items:           []models.OrderItem{{ProductID: product.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	orderService, _, _, orderRepo, _ := newLedgerFixture(t)

	_, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items:           []models.OrderItem{{ProductID: "no-such-product", Quantity: 1}},
	})
	assert.ErrorIs(t, err, models.ErrNotFound)

	ledger, err := orderRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestOrderService_CreateOrder_NewCustomer(t *testing.T) {
	orderService, _, customerRepo, _, product := newLedgerFixture(t)

	order, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName:  "Anjali Desai",
		NewCustomerPhone: "+91 98765 43210",
		Items:            []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	customers, err := customerRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Anjali Desai", customers[0].Name)
	assert.Equal(t, 1, customers[0].TotalOrders)
	assert.Equal(t, "+91 98765 43210", customers[0].Phone)
	assert.NotEmpty(t, customers[0].AvatarURL)
	assert.Equal(t, customers[0].ID, order.CustomerID)
}

func TestOrderService_CreateOrder_ExistingCustomer(t *testing.T) {
	orderService, _, customerRepo, _, product := newLedgerFixture(t)

	existing := &models.Customer{Name: "Priya Mehta", TotalOrders: 8}
	require.NoError(t, customerRepo.Create(existing))

	order, err := orderService.CreateOrder(services.CreateOrderRequest{
		CustomerID: existing.ID,
		Items:      []models.OrderItem{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, order.CustomerID)
	assert.Equal(t, "Priya Mehta", order.CustomerName)

	customers, err := customerRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, customers, 1, "no duplicate customer created")
	assert.Equal(t, 9, customers[0].TotalOrders)
	assert.False(t, customers[0].LastPurchase.IsZero())
}

func TestOrderService_CreateOrder_UnknownCustomer(t *testing.T) {
	orderService, productRepo, _, _, product := newLedgerFixture(t)

	_, err := orderService.CreateOrder(services.CreateOrderRequest{
		CustomerID: "no-such-customer",
		Items:      []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, models.ErrNotFound)

	updated, err := productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Stock, "stock untouched when the customer lookup fails")
}

func TestOrderService_CreateOrder_SnapshotsSelectionPrice(t *testing.T) {
	orderService, productRepo, _, orderRepo, product := newLedgerFixture(t)

	order, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 2, PricePerItem: 80000}, // selection-time price
			{ProductID: product.ID, Quantity: 1},                     // falls back to live price
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2*80000+85250), order.Total)

	// A later catalog price edit leaves the recorded prices alone.
	product.Price = 99999
	require.NoError(t, productRepo.Update(product))

	stored, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), stored.Items[0].PricePerItem)
	assert.Equal(t, int64(85250), stored.Items[1].PricePerItem)
	assert.Equal(t, int64(2*80000+85250), stored.Total)
}

func TestOrderService_DeleteOrder_RestoresStock(t *testing.T) {
	orderService, productRepo, _, orderRepo, product := newLedgerFixture(t)

	order, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items:           []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	mid, err := productRepo.GetByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 7, mid.Stock)

	require.NoError(t, orderService.DeleteOrder(order.ID))

	after, err := productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, after.Stock)

	_, err = orderRepo.GetByID(order.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderService_DeleteOrder_RestoreIsUnconditional(t *testing.T) {
	orderService, productRepo, _, _, product := newLedgerFixture(t)

	order, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items:           []models.OrderItem{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	// Someone edits the stock level while the order is open.
	edited, err := productRepo.GetByID(product.ID)
	require.NoError(t, err)
	edited.Stock = 100
	require.NoError(t, productRepo.Update(edited))

	require.NoError(t, orderService.DeleteOrder(order.ID))

	after, err := productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 103, after.Stock, "stock simply increases by the recorded quantity")
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	orderService, _, _, _, _ := newLedgerFixture(t)

	err := orderService.DeleteOrder("JS-9999")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderService_AdvanceOrderStatus_SaturatesAtDelivered(t *testing.T) {
	orderService, _, _, _, product := newLedgerFixture(t)

	order, err := orderService.CreateOrder(services.CreateOrderRequest{
		NewCustomerName: "Rohan Sharma",
		Items:           []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, order.Status)

	advanced, err := orderService.AdvanceOrderStatus(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, advanced.Status)

	advanced, err = orderService.AdvanceOrderStatus(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, advanced.Status)

	// Delivered is terminal; further advances are no-ops, not errors.
	for i := 0; i < 3; i++ {
		advanced, err = orderService.AdvanceOrderStatus(order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDelivered, advanced.Status)
	}
}

func TestOrderService_AdvanceOrderStatus_NotFound(t *testing.T) {
	orderService, _, _, _, _ := newLedgerFixture(t)

	_, err := orderService.AdvanceOrderStatus("JS-9999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
