package query

import (
	"fmt"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

// ListProductsQuery represents the query to list an owner's products
type ListProductsQuery struct {
	OwnerID         uint
	Search          string // Optional: substring match over name/description
	Category        string // Optional: filter by category
	IncludeInactive bool
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query, newest first.
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	filter := domain.ProductFilter{
		Search:          q.Search,
		Category:        q.Category,
		IncludeInactive: q.IncludeInactive,
	}

	products, err := h.repo.FindAll(q.OwnerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListCategoriesQuery represents the query for an owner's distinct categories
type ListCategoriesQuery struct {
	OwnerID uint
}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	repo domain.ProductRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.ProductRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(q ListCategoriesQuery) ([]string, error) {
	categories, err := h.repo.Categories(q.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
