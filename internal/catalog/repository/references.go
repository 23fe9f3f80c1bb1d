package repository

import (
	"gorm.io/gorm"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
	"github.com/stockwise/inventory-catalog/pkg/logger"
)

// dependentTable pairs a dependent table name with the human description
// used when reporting it as a deletion blocker.
type dependentTable struct {
	name        string
	description string
}

// dependentTables is the fixed set of tables holding product references.
var dependentTables = []dependentTable{
	{name: "order_details", description: "order records"},
	{name: "cart_items", description: "shopping cart items"},
	{name: "inventory_logs", description: "inventory log entries"},
}

// GormReferenceChecker reports which dependent tables reference a product.
// It is read-only; diagnostics fail open (a table that is missing or cannot
// be queried counts as holding zero references).
type GormReferenceChecker struct {
	db *gorm.DB
}

func NewGormReferenceChecker(db *gorm.DB) *GormReferenceChecker {
	return &GormReferenceChecker{db: db}
}

// HasTable reports whether a dependent table exists in this deployment.
func (c *GormReferenceChecker) HasTable(name string) bool {
	return c.db.Migrator().HasTable(name)
}

// CheckReferences returns the dependent tables with at least one row
// referencing the product, in enumeration order.
func (c *GormReferenceChecker) CheckReferences(productID uint) []domain.BlockingTable {
	var blocking []domain.BlockingTable

	for _, t := range dependentTables {
		if !c.HasTable(t.name) {
			logger.Logger.Debug().
				Str("table", t.name).
				Msg("Dependent table absent, treating as zero references")
			continue
		}

		var count int64
		err := c.db.Table(t.name).Where("product_id = ?", productID).Count(&count).Error
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("table", t.name).
				Uint("product_id", productID).
				Msg("Failed to count product references, treating as zero")
			continue
		}

		if count > 0 {
			blocking = append(blocking, domain.BlockingTable{
				Table:       t.name,
				Count:       count,
				Description: t.description,
			})
		}
	}

	return blocking
}
