package command

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tansu/autoservice/internal/customer/domain"
	apperr "github.com/tansu/autoservice/internal/domain"
)

// UpdateCustomerCommand represents the command to update customer details
type UpdateCustomerCommand struct {
	CustomerID uint   `validate:"required"`
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"required"`
	Address    string
}

// UpdateCustomerHandler handles customer updates
type UpdateCustomerHandler struct {
	repo     domain.CustomerRepository
	validate *validator.Validate
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo, validate: validator.New()}
}

// Handle validates the command, checks email and phone are not held by any
// other active customer, then persists the change.
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	if err := h.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}
	if !phonePattern.MatchString(cmd.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", apperr.ErrInvalidArgument)
	}

	customer, err := h.repo.FindByID(cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer lookup failed: %w", err)
	}

	emailTaken, err := h.repo.EmailInUse(cmd.Email, cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	}

	phoneTaken, err := h.repo.PhoneInUse(cmd.Phone, cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if phoneTaken {
		return nil, fmt.Errorf("%w: phone already registered", apperr.ErrConflict)
	}

	customer.Name = cmd.Name
	customer.Email = cmd.Email
	customer.Phone = cmd.Phone
	customer.Address = cmd.Address

	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}
