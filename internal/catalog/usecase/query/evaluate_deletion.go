package query

import (
	"fmt"
	"strings"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

// EvaluateDeletionQuery represents the query to check whether a product can
// be hard-deleted safely.
type EvaluateDeletionQuery struct {
	ProductID uint
	OwnerID   uint
}

// EvaluateDeletionHandler handles deletion-safety evaluation
type EvaluateDeletionHandler struct {
	repo domain.ProductRepository
	refs domain.ReferenceChecker
}

// NewEvaluateDeletionHandler creates a new evaluate deletion handler
func NewEvaluateDeletionHandler(repo domain.ProductRepository, refs domain.ReferenceChecker) *EvaluateDeletionHandler {
	return &EvaluateDeletionHandler{repo: repo, refs: refs}
}

// Handle executes the deletion-safety evaluation. The result is computed
// fresh on every call and is advisory only: a concurrent writer can add
// references after this check, so safe delete still guards the delete
// statement itself against constraint violations.
func (h *EvaluateDeletionHandler) Handle(q EvaluateDeletionQuery) domain.DeletionResult {
	// Fails closed: a missing product and a foreign-owned product read the same.
	if _, err := h.repo.FindByID(q.ProductID, q.OwnerID); err != nil {
		return domain.DeletionResult{
			CanDelete: false,
			Reason:    "Product not found or access denied",
		}
	}

	blocking := h.refs.CheckReferences(q.ProductID)
	if len(blocking) > 0 {
		parts := make([]string, len(blocking))
		for i, b := range blocking {
			parts[i] = fmt.Sprintf("%d %s", b.Count, b.Description)
		}
		return domain.DeletionResult{
			CanDelete: false,
			Reason: fmt.Sprintf(
				"Cannot delete product because it has associated records: %s. Consider using soft delete instead.",
				strings.Join(parts, ", "),
			),
			BlockingTables: blocking,
		}
	}

	return domain.DeletionResult{CanDelete: true}
}
