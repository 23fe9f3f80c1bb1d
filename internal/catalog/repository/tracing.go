package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
// spans around the destructive operations.
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// DeleteWithContext performs an owner-scoped hard delete with tracing.
func (r *GormProductRepositoryWithTracing) DeleteWithContext(ctx context.Context, id, ownerID uint) (int64, error) {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("owner.id", int(ownerID)),
		),
	)
	defer span.End()

	affected, err := r.GormProductRepository.Delete(id, ownerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return affected, err
	}

	span.SetAttributes(attribute.Int64("result.rows_affected", affected))
	return affected, nil
}

// DeactivateWithContext performs an owner-scoped soft delete with tracing.
func (r *GormProductRepositoryWithTracing) DeactivateWithContext(ctx context.Context, id, ownerID uint) (int64, error) {
	_, span := tracer.Start(ctx, "repository.Deactivate",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("owner.id", int(ownerID)),
		),
	)
	defer span.End()

	affected, err := r.GormProductRepository.Deactivate(id, ownerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return affected, err
	}

	span.SetAttributes(attribute.Int64("result.rows_affected", affected))
	return affected, nil
}

// DeleteCascadeWithContext runs the cascading delete transaction with tracing.
func (r *GormProductRepositoryWithTracing) DeleteCascadeWithContext(ctx context.Context, id, ownerID uint) error {
	_, span := tracer.Start(ctx, "repository.DeleteCascade",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("owner.id", int(ownerID)),
		),
	)
	defer span.End()

	if err := r.GormProductRepository.DeleteCascade(id, ownerID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// GormReferenceCheckerWithTracing wraps GormReferenceChecker with tracing.
type GormReferenceCheckerWithTracing struct {
	*GormReferenceChecker
}

// NewGormReferenceCheckerWithTracing creates a new reference checker with tracing
func NewGormReferenceCheckerWithTracing(db *gorm.DB) *GormReferenceCheckerWithTracing {
	return &GormReferenceCheckerWithTracing{
		GormReferenceChecker: NewGormReferenceChecker(db),
	}
}

// CheckReferencesWithContext runs the reference scan with tracing.
func (c *GormReferenceCheckerWithTracing) CheckReferencesWithContext(ctx context.Context, productID uint) []domain.BlockingTable {
	_, span := tracer.Start(ctx, "repository.CheckReferences",
		trace.WithAttributes(
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	blocking := c.GormReferenceChecker.CheckReferences(productID)
	span.SetAttributes(attribute.Int("result.blocking_tables", len(blocking)))
	return blocking
}
