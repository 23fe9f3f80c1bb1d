package command

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	OwnerID     uint
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	Description string
	Image       string
	ProductCode string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.OwnerID == 0 {
		return nil, fmt.Errorf("owner id is required")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if cmd.ProductCode == "" {
		return nil, fmt.Errorf("product code is required")
	}

	// Product codes are unique across all owners
	if existing, _ := h.repo.FindByCode(cmd.ProductCode); existing != nil {
		return nil, fmt.Errorf("product code already exists")
	}

	product := &domain.Product{
		UserID:      cmd.OwnerID,
		Name:        cmd.Name,
		Category:    cmd.Category,
		Price:       cmd.Price,
		Quantity:    cmd.Quantity,
		Description: cmd.Description,
		Image:       cmd.Image,
		ProductCode: cmd.ProductCode,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
