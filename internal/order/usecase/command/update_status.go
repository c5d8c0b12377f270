package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/order/domain"
)

// UpdateStatusCommand represents the command to move an order's status
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdateStatusHandler handles order status updates
type UpdateStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle enforces forward-only transitions before persisting the new status.
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("%w: order id is required", apperr.ErrInvalidArgument)
	}
	if !domain.ValidStatus(cmd.Status) {
		return fmt.Errorf("%w: invalid status: %s", apperr.ErrInvalidArgument, cmd.Status)
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return fmt.Errorf("order lookup failed: %w", err)
	}
	if !order.CanTransitionTo(cmd.Status) {
		return fmt.Errorf("%w: order cannot move from %s to %s", apperr.ErrConflict, order.Status, cmd.Status)
	}

	if err := h.repo.UpdateStatus(cmd.OrderID, cmd.Status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
