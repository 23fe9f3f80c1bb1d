package command

import (
	"errors"

	"gorm.io/gorm"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
	"github.com/stockwise/inventory-catalog/internal/catalog/usecase/query"
	"github.com/stockwise/inventory-catalog/pkg/logger"
)

// SafeDeleteCommand represents the command to hard-delete a product only
// when no dependent records reference it.
type SafeDeleteCommand struct {
	ProductID uint
	OwnerID   uint
}

// SafeDeleteHandler handles the guarded hard-delete command
type SafeDeleteHandler struct {
	repo     domain.ProductRepository
	evaluate *query.EvaluateDeletionHandler
}

// NewSafeDeleteHandler creates a new safe delete handler
func NewSafeDeleteHandler(repo domain.ProductRepository, evaluate *query.EvaluateDeletionHandler) *SafeDeleteHandler {
	return &SafeDeleteHandler{repo: repo, evaluate: evaluate}
}

// Handle executes the safe delete command.
//
// The prior evaluation is check-then-act and therefore racy under concurrent
// writers; the real safety guarantee is the foreign-key violation caught on
// the delete statement itself.
func (h *SafeDeleteHandler) Handle(cmd SafeDeleteCommand) domain.DeleteOutcome {
	result := h.evaluate.Handle(query.EvaluateDeletionQuery{
		ProductID: cmd.ProductID,
		OwnerID:   cmd.OwnerID,
	})
	if !result.CanDelete {
		return domain.DeleteOutcome{Success: false, Message: result.Reason}
	}

	affected, err := h.repo.Delete(cmd.ProductID, cmd.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			// References appeared between the evaluation and the delete.
			return domain.DeleteOutcome{
				Success: false,
				Message: "Cannot delete product because it has associated records in other tables. Please use soft delete instead.",
			}
		}
		logger.Logger.Error().
			Err(err).
			Uint("product_id", cmd.ProductID).
			Uint("owner_id", cmd.OwnerID).
			Msg("Unexpected store error during product delete")
		return domain.DeleteOutcome{
			Success: false,
			Message: "Database error occurred while deleting product.",
		}
	}

	if affected == 0 {
		return domain.DeleteOutcome{
			Success: false,
			Message: "Product not found or already deleted.",
		}
	}

	return domain.DeleteOutcome{
		Success: true,
		Message: "Product deleted successfully.",
	}
}
