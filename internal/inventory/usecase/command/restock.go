package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// RestockCommand represents the command to add stock to an item
type RestockCommand struct {
	ItemID uint
	Amount int
}

// RestockHandler handles stock additions
type RestockHandler struct {
	repo domain.ItemRepository
}

// NewRestockHandler creates a new restock handler
func NewRestockHandler(repo domain.ItemRepository) *RestockHandler {
	return &RestockHandler{repo: repo}
}

// Handle adds stock and stamps the restock time.
func (h *RestockHandler) Handle(cmd RestockCommand) error {
	if cmd.ItemID == 0 {
		return fmt.Errorf("%w: item id is required", apperr.ErrInvalidArgument)
	}
	if cmd.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperr.ErrInvalidArgument)
	}
	if err := h.repo.AddStock(cmd.ItemID, cmd.Amount); err != nil {
		return fmt.Errorf("failed to restock: %w", err)
	}
	return nil
}
