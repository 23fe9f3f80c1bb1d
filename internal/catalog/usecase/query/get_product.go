package query

import (
	"fmt"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

// GetProductQuery represents the query to get a product by ID for an owner
type GetProductQuery struct {
	ProductID uint
	OwnerID   uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query. Soft-deleted products are still
// returned here with IsActive false; only listings filter them out.
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	if q.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(q.ProductID, q.OwnerID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	return product, nil
}
