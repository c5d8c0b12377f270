package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete an inventory item
type DeleteItemCommand struct {
	ID uint
}

// DeleteItemHandler handles inventory item deletion
type DeleteItemHandler struct {
	repo domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle removes the item permanently
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: item id is required", apperr.ErrInvalidArgument)
	}
	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
