package command

import (
	"errors"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
	"github.com/stockwise/inventory-catalog/pkg/logger"
)

// ForceDeleteCommand represents the command to delete a product together
// with every dependent row referencing it. Callers must obtain explicit
// user confirmation before issuing this command.
type ForceDeleteCommand struct {
	ProductID uint
	OwnerID   uint
}

// ForceDeleteHandler handles the cascading delete command
type ForceDeleteHandler struct {
	repo domain.ProductRepository
}

// NewForceDeleteHandler creates a new force delete handler
func NewForceDeleteHandler(repo domain.ProductRepository) *ForceDeleteHandler {
	return &ForceDeleteHandler{repo: repo}
}

// Handle executes the force delete command. The repository runs the cascade
// and the product delete as one transaction: when the product turns out to
// be missing or foreign-owned, the dependent-row deletions roll back too,
// so a partial cascade is never observable.
func (h *ForceDeleteHandler) Handle(cmd ForceDeleteCommand) domain.DeleteOutcome {
	err := h.repo.DeleteCascade(cmd.ProductID, cmd.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.DeleteOutcome{
				Success: false,
				Message: "Product not found or access denied.",
			}
		}
		logger.Logger.Error().
			Err(err).
			Uint("product_id", cmd.ProductID).
			Uint("owner_id", cmd.OwnerID).
			Msg("Force delete transaction rolled back")
		return domain.DeleteOutcome{Success: false, Message: err.Error()}
	}

	return domain.DeleteOutcome{
		Success: true,
		Message: "Product and all related records deleted successfully.",
	}
}
