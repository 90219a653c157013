package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"jewelstack/internal/models"
	"jewelstack/internal/repositories"
	"jewelstack/pkg/rabbitmq"
)

// CreateOrderRequest is the input for order submission. The customer is
// either an existing directory entry (CustomerID) or a new one
// (NewCustomerName, optional phone/email). PricePerItem on a line is the
// price captured at selection time; when zero, the live catalog price is
// snapshotted instead.
type CreateOrderRequest struct {
	CustomerID       string             `json:"customer_id"`
	NewCustomerName  string             `json:"new_customer_name"`
	NewCustomerPhone string             `json:"new_customer_phone"`
	NewCustomerEmail string             `json:"new_customer_email"`
	Items            []models.OrderItem `json:"items"`
}

// OrderService handles business logic for the order ledger: submission,
// deletion and status advancement, keeping catalog stock and customer
// counters consistent.
type OrderService struct {
	orderRepo       repositories.OrderRepository
	productRepo     repositories.ProductRepository
	customerService *CustomerService
	mqClient        *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, customerService *CustomerService, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		customerService: customerService,
		mqClient:        mqClient,
	}
}

// GetAllOrders retrieves all orders, most recent first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder submits a new order. All validation runs before any state
// change, so a rejected submission leaves the catalog, directory and ledger
// untouched. On success the order is prepended to the ledger with status
// Pending, stock is decremented per line, and the customer's counters are
// updated (or a new customer inserted).
func (s *OrderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if req.CustomerID == "" && req.NewCustomerName == "" {
		return nil, fmt.Errorf("order needs an existing customer id or a new customer name: %w", models.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order needs at least one item: %w", models.ErrValidation)
	}

	// 1. Validate every line and snapshot prices. Quantities for the same
	// product are summed so combined lines cannot oversell the stock.
	var total int64
	processedItems := make([]models.OrderItem, 0, len(req.Items))
	products := make(map[string]*models.Product)
	requested := make(map[string]int)

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for product %s must be positive: %w", item.ProductID, models.ErrValidation)
		}

		product, ok := products[item.ProductID]
		if !ok {
			var err error
			product, err = s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			products[item.ProductID] = product
		}

		requested[item.ProductID] += item.Quantity
		if requested[item.ProductID] > product.Stock {
			return nil, fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d): %w",
				product.Name, requested[item.ProductID], product.Stock, models.ErrValidation)
		}

		pricePerItem := item.PricePerItem // price captured at selection time
		if pricePerItem == 0 {
			pricePerItem = product.Price
		}
		processedItems = append(processedItems, models.OrderItem{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PricePerItem: pricePerItem,
		})
		total += pricePerItem * int64(item.Quantity)
	}

	// 2. Resolve or create the customer. A missing customer id fails here,
	// still before any ledger or catalog mutation.
	customer, err := s.customerService.ResolveOrCreate(req.CustomerID, req.NewCustomerName, req.NewCustomerPhone, req.NewCustomerEmail)
	if err != nil {
		return nil, err
	}

	// 3. Append the order to the ledger. The repository allocates the
	// "JS-<n>" ledger number.
	newOrder := &models.Order{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Date:         time.Now(),
		Items:        processedItems,
		Total:        total,
		Status:       models.StatusPending,
	}
	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// 4. Decrement stock per referenced product.
	for id, qty := range requested {
		product := products[id]
		product.Stock -= qty
		if err := s.productRepo.Update(product); err != nil {
			return nil, fmt.Errorf("failed to decrement stock for product %s: %w", id, err)
		}
	}

	s.publishOrderEvent("order.created", newOrder)

	return newOrder, nil
}

// DeleteOrder removes an order from the ledger, first restoring each line's
// quantity onto the product's stock. Restoration is unconditional: the stock
// simply increases by the recorded quantity even if the product was edited
// after the order was placed.
func (s *OrderService) DeleteOrder(id string) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}

	restored := make(map[string]int)
	for _, item := range order.Items {
		restored[item.ProductID] += item.Quantity
	}
	for productID, qty := range restored {
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				// Product was deleted after the order was placed; nothing
				// to restore onto.
				log.Printf("Skipping stock restore for deleted product %s", productID)
				continue
			}
			return fmt.Errorf("failed to load product %s for stock restore: %w", productID, err)
		}
		product.Stock += qty
		if err := s.productRepo.Update(product); err != nil {
			return fmt.Errorf("failed to restore stock for product %s: %w", productID, err)
		}
	}

	if err := s.orderRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}

	s.publishOrderEvent("order.deleted", order)

	return nil
}

// AdvanceOrderStatus moves an order one step along
// Pending -> Shipped -> Delivered. Advancing a Delivered order is a no-op,
// not an error.
func (s *OrderService) AdvanceOrderStatus(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if order.Status == models.StatusDelivered {
		return order, nil
	}

	next := order.Status.Next()
	if err := s.orderRepo.UpdateStatus(id, next); err != nil {
		return nil, fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	order.Status = next

	s.publishOrderEvent("order.status_changed", order)

	return order, nil
}

// publishOrderEvent pushes an order event to RabbitMQ. Failures are logged
// and never surfaced to the caller; the ledger mutation already happened.
func (s *OrderService) publishOrderEvent(event string, order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	payload := map[string]interface{}{
		"event":     event,
		"order_id":  order.ID,
		"customer":  order.CustomerID,
		"status":    order.Status,
		"total":     order.Total,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if err := s.mqClient.PublishOrderEvent(payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %s: %v", event, order.ID, err)
	} else {
		log.Printf("Published %s event for order %s", event, order.ID)
	}
}
