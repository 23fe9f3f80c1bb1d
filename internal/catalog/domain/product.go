package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product does not exist or is not
// owned by the caller. The two cases are deliberately indistinguishable.
var ErrProductNotFound = errors.New("product not found or access denied")

// Product represents a product record owned by a single user.
// Soft delete is modelled by IsActive; a hard delete removes the row.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	Name        string          `json:"name" gorm:"not null"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null;default:0"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	ProductCode string          `json:"product_code" gorm:"uniqueIndex;not null"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is at or below the stock threshold.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Quantity <= threshold
}

// ProductFilter narrows listing queries. Search matches name or description
// as a substring; Category is an exact match. Inactive rows are excluded
// unless IncludeInactive is set.
type ProductFilter struct {
	Search          string
	Category        string
	IncludeInactive bool
}

// ProductRepository defines the contract for product data access.
// Every read and write is scoped by the owning user id.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id, ownerID uint) (*Product, error)
	FindByCode(code string) (*Product, error)
	FindAll(ownerID uint, filter ProductFilter) ([]Product, error)
	Update(product *Product) error

	// Delete removes the product row and reports rows affected.
	Delete(id, ownerID uint) (int64, error)
	// Deactivate flags the product inactive and reports rows affected.
	Deactivate(id, ownerID uint) (int64, error)
	// DeleteCascade removes dependent rows and the product in one
	// transaction. It returns ErrProductNotFound (after rolling back any
	// dependent-row deletions) when the product is missing or not owned.
	DeleteCascade(id, ownerID uint) error

	Count(ownerID uint) (int64, error)
	CountLowStock(ownerID uint, threshold int) (int64, error)
	FindLowStock(ownerID uint, threshold int) ([]Product, error)
	Categories(ownerID uint) ([]string, error)
}
