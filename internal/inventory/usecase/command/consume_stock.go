package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// ConsumeStockCommand represents the command to take stock for a job
type ConsumeStockCommand struct {
	ItemID uint
	Amount int
}

// ConsumeStockHandler handles stock reductions
type ConsumeStockHandler struct {
	repo domain.ItemRepository
}

// NewConsumeStockHandler creates a new consume stock handler
func NewConsumeStockHandler(repo domain.ItemRepository) *ConsumeStockHandler {
	return &ConsumeStockHandler{repo: repo}
}

// Handle reduces stock. An insufficient balance surfaces as a conflict so
// callers can report it to the user; infrastructure failures pass through
// as errors.
func (h *ConsumeStockHandler) Handle(cmd ConsumeStockCommand) error {
	if cmd.ItemID == 0 {
		return fmt.Errorf("%w: item id is required", apperr.ErrInvalidArgument)
	}
	if cmd.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperr.ErrInvalidArgument)
	}

	ok, err := h.repo.ReduceStock(cmd.ItemID, cmd.Amount)
	if err != nil {
		return fmt.Errorf("failed to consume stock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: insufficient stock for item %d", apperr.ErrConflict, cmd.ItemID)
	}
	return nil
}
