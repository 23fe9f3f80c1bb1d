package query

import (
	"fmt"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

// DefaultLowStockThreshold is used when no threshold is configured.
const DefaultLowStockThreshold = 5

// LowStockQuery represents the query for an owner's low-stock products.
// A Threshold of zero or less falls back to the configured default.
type LowStockQuery struct {
	OwnerID   uint
	Threshold int
}

// LowStockReport holds the low-stock products and their count.
type LowStockReport struct {
	Threshold int              `json:"threshold"`
	Count     int64            `json:"count"`
	Products  []domain.Product `json:"products"`
}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	repo             domain.ProductRepository
	defaultThreshold int
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.ProductRepository, defaultThreshold int) *LowStockHandler {
	if defaultThreshold <= 0 {
		defaultThreshold = DefaultLowStockThreshold
	}
	return &LowStockHandler{repo: repo, defaultThreshold: defaultThreshold}
}

// Handle executes the low stock query. Soft-deleted products are excluded.
func (h *LowStockHandler) Handle(q LowStockQuery) (*LowStockReport, error) {
	threshold := q.Threshold
	if threshold <= 0 {
		threshold = h.defaultThreshold
	}

	count, err := h.repo.CountLowStock(q.OwnerID, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock products: %w", err)
	}

	products, err := h.repo.FindLowStock(q.OwnerID, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	return &LowStockReport{
		Threshold: threshold,
		Count:     count,
		Products:  products,
	}, nil
}
