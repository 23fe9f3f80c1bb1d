package command

import (
	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
	"github.com/stockwise/inventory-catalog/pkg/logger"
)

// SoftDeleteCommand represents the command to mark a product inactive
type SoftDeleteCommand struct {
	ProductID uint
	OwnerID   uint
}

// SoftDeleteHandler handles the soft delete command
type SoftDeleteHandler struct {
	repo domain.ProductRepository
}

// NewSoftDeleteHandler creates a new soft delete handler
func NewSoftDeleteHandler(repo domain.ProductRepository) *SoftDeleteHandler {
	return &SoftDeleteHandler{repo: repo}
}

// Handle executes the soft delete command. It never consults the reference
// checker: flagging a product inactive removes nothing, so it is always
// allowed, references or not.
func (h *SoftDeleteHandler) Handle(cmd SoftDeleteCommand) domain.DeleteOutcome {
	affected, err := h.repo.Deactivate(cmd.ProductID, cmd.OwnerID)
	if err != nil {
		logger.Logger.Error().
			Err(err).
			Uint("product_id", cmd.ProductID).
			Uint("owner_id", cmd.OwnerID).
			Msg("Unexpected store error during product deactivation")
		return domain.DeleteOutcome{
			Success: false,
			Message: "Database error occurred while deleting product.",
		}
	}

	if affected == 0 {
		return domain.DeleteOutcome{
			Success: false,
			Message: "Product not found or access denied.",
		}
	}

	return domain.DeleteOutcome{
		Success: true,
		Message: "Product deactivated successfully.",
	}
}
