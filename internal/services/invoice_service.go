package services

import (
	"fmt"
	"time"

	"jewelstack/internal/models"
	"jewelstack/internal/repositories"
)

// InvoiceLine is a priced line on an invoice.
type InvoiceLine struct {
	ProductID string `json:"product_id,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

// Invoice is a printable bill, built either from a ledger order or from
// free-form lines.
type Invoice struct {
	Number       string        `json:"number"`
	OrderID      string        `json:"order_id,omitempty"`
	CustomerName string        `json:"customer_name"`
	Date         time.Time     `json:"date"`
	Lines        []InvoiceLine `json:"lines"`
	Total        int64         `json:"total"`
}

// AdHocLine is the input for a free-form invoice line.
type AdHocLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// InvoiceService builds invoices.
type InvoiceService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *InvoiceService {
	return &InvoiceService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// FromOrder builds an invoice from a ledger order. Product names are
// resolved from the catalog; a product deleted since the order was placed
// shows as "Unknown Product". Line prices are the order's snapshotted
// prices, so the invoice total always equals the order total.
func (s *InvoiceService) FromOrder(orderID string) (*Invoice, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	lines := make([]InvoiceLine, 0, len(order.Items))
	for _, item := range order.Items {
		name := "Unknown Product"
		if product, err := s.productRepo.GetByID(item.ProductID); err == nil {
			name = product.Name
		}
		lines = append(lines, InvoiceLine{
			ProductID: item.ProductID,
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.PricePerItem,
			LineTotal: item.PricePerItem * int64(item.Quantity),
		})
	}

	return &Invoice{
		Number:       "INV-" + order.ID,
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Date:         time.Now(),
		Lines:        lines,
		Total:        order.Total,
	}, nil
}

// Build assembles an ad-hoc invoice from free-form lines.
func (s *InvoiceService) Build(customerName string, items []AdHocLine) (*Invoice, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("invoice needs at least one line: %w", models.ErrValidation)
	}

	var total int64
	lines := make([]InvoiceLine, 0, len(items))
	for _, item := range items {
		if item.Name == "" || item.Quantity <= 0 || item.UnitPrice <= 0 {
			return nil, fmt.Errorf("invoice line needs a name, a positive quantity and a positive price: %w", models.ErrValidation)
		}
		lineTotal := item.UnitPrice * int64(item.Quantity)
		lines = append(lines, InvoiceLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}

	return &Invoice{
		Number:       fmt.Sprintf("INV-%d", time.Now().UnixMilli()),
		CustomerName: customerName,
		Date:         time.Now(),
		Lines:        lines,
		Total:        total,
	}, nil
}
