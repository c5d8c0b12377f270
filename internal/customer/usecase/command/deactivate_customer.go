package command

import (
	"fmt"

	"github.com/tansu/autoservice/internal/customer/domain"
	apperr "github.com/tansu/autoservice/internal/domain"
)

// DeactivateCustomerCommand represents the command to soft-delete a customer
type DeactivateCustomerCommand struct {
	CustomerID uint
}

// DeactivateCustomerHandler handles customer deactivation
type DeactivateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewDeactivateCustomerHandler creates a new deactivate customer handler
func NewDeactivateCustomerHandler(repo domain.CustomerRepository) *DeactivateCustomerHandler {
	return &DeactivateCustomerHandler{repo: repo}
}

// Handle executes the deactivation. The customer row is retained.
func (h *DeactivateCustomerHandler) Handle(cmd DeactivateCustomerCommand) error {
	if cmd.CustomerID == 0 {
		return fmt.Errorf("%w: customer id is required", apperr.ErrInvalidArgument)
	}
	if err := h.repo.Delete(cmd.CustomerID); err != nil {
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}
	return nil
}
