package query

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics for an owner
type GetStatsQuery struct {
	OwnerID   uint
	Threshold int // low-stock threshold; zero or less uses the handler default
}

// CatalogStats represents per-owner catalog statistics
type CatalogStats struct {
	TotalProducts   int64           `json:"total_products"`
	LowStockCount   int64           `json:"low_stock_count"`
	TotalStockUnits int64           `json:"total_stock_units"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	TotalCategories int64           `json:"total_categories"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo             domain.ProductRepository
	defaultThreshold int
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository, defaultThreshold int) *GetStatsHandler {
	if defaultThreshold <= 0 {
		defaultThreshold = DefaultLowStockThreshold
	}
	return &GetStatsHandler{repo: repo, defaultThreshold: defaultThreshold}
}

// Handle executes the get stats query. Counts cover active products only,
// matching the listing queries.
func (h *GetStatsHandler) Handle(q GetStatsQuery) (*CatalogStats, error) {
	threshold := q.Threshold
	if threshold <= 0 {
		threshold = h.defaultThreshold
	}

	total, err := h.repo.Count(q.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	lowStock, err := h.repo.CountLowStock(q.OwnerID, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock products: %w", err)
	}

	products, err := h.repo.FindAll(q.OwnerID, domain.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var stockUnits int64
	value := decimal.Zero
	categories := make(map[string]bool)

	for _, product := range products {
		stockUnits += int64(product.Quantity)
		value = value.Add(product.Price.Mul(decimal.NewFromInt(int64(product.Quantity))))
		if product.Category != "" {
			categories[product.Category] = true
		}
	}

	return &CatalogStats{
		TotalProducts:   total,
		LowStockCount:   lowStock,
		TotalStockUnits: stockUnits,
		InventoryValue:  value,
		TotalCategories: int64(len(categories)),
	}, nil
}
