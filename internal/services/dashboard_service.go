package services

import (
	"sync"

	"jewelstack/internal/models"
	"jewelstack/internal/repositories"
)

// lowStockThreshold marks products that need restocking on the dashboard.
const lowStockThreshold = 3

// DashboardSummary aggregates the store metrics shown on the dashboard.
type DashboardSummary struct {
	TotalRevenue    int64            `json:"total_revenue"`
	TotalOrders     int              `json:"total_orders"`
	PendingOrders   int              `json:"pending_orders"`
	ItemsInStock    int              `json:"items_in_stock"`
	LowStock        []models.Product `json:"low_stock"`
	GoldRatePerGram int64            `json:"gold_rate_per_gram"`
	GoldRateManual  bool             `json:"gold_rate_manual"`
}

// DashboardService computes store metrics and tracks the displayed gold
// rate, which starts at the configured default and can be overridden
// manually.
type DashboardService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository

	mu         sync.RWMutex
	goldRate   int64
	rateManual bool
}

// NewDashboardService creates a new DashboardService with the configured
// default gold rate per gram.
func NewDashboardService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, defaultGoldRate int64) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		goldRate:    defaultGoldRate,
	}
}

// SetGoldRate manually overrides the displayed gold rate.
func (s *DashboardService) SetGoldRate(rate int64) error {
	if rate <= 0 {
		return models.ErrValidation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goldRate = rate
	s.rateManual = true
	return nil
}

// Summary computes the current dashboard metrics from the ledger and the
// catalog.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalOrders: len(orders),
	}
	for _, o := range orders {
		summary.TotalRevenue += o.Total
		if o.Status == models.StatusPending {
			summary.PendingOrders++
		}
	}
	for _, p := range products {
		summary.ItemsInStock += p.Stock
		if p.Stock <= lowStockThreshold {
			summary.LowStock = append(summary.LowStock, p)
		}
	}

	s.mu.RLock()
	summary.GoldRatePerGram = s.goldRate
	summary.GoldRateManual = s.rateManual
	s.mu.RUnlock()

	return summary, nil
}
