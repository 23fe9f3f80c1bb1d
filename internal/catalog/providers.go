package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
	"github.com/stockwise/inventory-catalog/internal/catalog/repository"
	"github.com/stockwise/inventory-catalog/internal/catalog/usecase/command"
	"github.com/stockwise/inventory-catalog/internal/catalog/usecase/query"
)

// LowStockThreshold is the configured low-stock quantity cutoff.
type LowStockThreshold int

// ProvideProductRepository provides the traced product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// ProvideReferenceChecker provides the traced reference checker
func ProvideReferenceChecker(db *gorm.DB) domain.ReferenceChecker {
	return repository.NewGormReferenceCheckerWithTracing(db)
}

// ProvideLowStockHandler provides the low stock query handler
func ProvideLowStockHandler(repo domain.ProductRepository, threshold LowStockThreshold) *query.LowStockHandler {
	return query.NewLowStockHandler(repo, int(threshold))
}

// ProvideStatsHandler provides the stats query handler
func ProvideStatsHandler(repo domain.ProductRepository, threshold LowStockThreshold) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo, int(threshold))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideReferenceChecker,
)

var UsecaseSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewSafeDeleteHandler,
	command.NewSoftDeleteHandler,
	command.NewForceDeleteHandler,
	query.NewEvaluateDeletionHandler,
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewListCategoriesHandler,
	ProvideLowStockHandler,
	ProvideStatsHandler,
)
