//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stockwise/inventory-catalog/internal/catalog/delivery/http"
	"github.com/stockwise/inventory-catalog/kafka"
)

// InitializeCatalogHandler initializes the HTTP handler with all dependencies
func InitializeCatalogHandler(db *gorm.DB, threshold LowStockThreshold, publisher *kafka.Publisher) *http.CatalogHandler {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewCatalogHandler,
	)
	return nil
}
