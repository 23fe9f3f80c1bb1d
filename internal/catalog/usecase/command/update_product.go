package command

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update an existing product
type UpdateProductCommand struct {
	ProductID   uint
	OwnerID     uint
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	Description string
	Image       string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command. The product code is a fixed
// business key and is not updatable.
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
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

	// The owner-scoped fetch doubles as the access check.
	product, err := h.repo.FindByID(cmd.ProductID, cmd.OwnerID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	product.Name = cmd.Name
	product.Category = cmd.Category
	product.Price = cmd.Price
	product.Quantity = cmd.Quantity
	product.Description = cmd.Description
	if cmd.Image != "" {
		product.Image = cmd.Image
	}
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
