package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// AdjustQuantityCommand represents the command to set an absolute stock level,
// used after a physical stock count.
type AdjustQuantityCommand struct {
	ItemID   uint
	Quantity int
}

// AdjustQuantityHandler handles absolute quantity corrections
type AdjustQuantityHandler struct {
	repo domain.ItemRepository
}

// NewAdjustQuantityHandler creates a new adjust quantity handler
func NewAdjustQuantityHandler(repo domain.ItemRepository) *AdjustQuantityHandler {
	return &AdjustQuantityHandler{repo: repo}
}

// Handle sets the item quantity to the given value
func (h *AdjustQuantityHandler) Handle(cmd AdjustQuantityCommand) error {
	if cmd.ItemID == 0 {
		return fmt.Errorf("%w: item id is required", apperr.ErrInvalidArgument)
	}
	if cmd.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", apperr.ErrInvalidArgument)
	}

	exists, err := h.repo.ExistsByID(cmd.ItemID)
	if err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: item %d", apperr.ErrNotFound, cmd.ItemID)
	}

	if err := h.repo.UpdateQuantity(cmd.ItemID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to adjust quantity: %w", err)
	}
	return nil
}
