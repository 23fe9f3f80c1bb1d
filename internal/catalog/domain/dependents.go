package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetail is a line item on a placed order referencing a product.
// The RESTRICT constraint makes the database reject a plain product delete
// while order lines still reference it.
type OrderDetail struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null;index"`
	ProductID uint            `json:"product_id" gorm:"not null;index"`
	Product   *Product        `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2)"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName specifies the table name
func (OrderDetail) TableName() string {
	return "order_details"
}

// CartItem is a product sitting in a user's shopping cart.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Product   *Product  `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// InventoryLog records a stock movement against a product. ProductID is a
// historical value with no enforced constraint: log rows outlive a force
// delete as the audit trail.
type InventoryLog struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ProductID      uint      `json:"product_id" gorm:"not null;index"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	Action         string    `json:"action"`
	QuantityChange int       `json:"quantity_change"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name
func (InventoryLog) TableName() string {
	return "inventory_logs"
}
