package command

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/tansu/autoservice/internal/customer/domain"
	apperr "github.com/tansu/autoservice/internal/domain"
)

// phonePattern accepts digits with common separators, 7 to 20 characters.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{5,18}[0-9]$`)

// RegisterCustomerCommand represents the command to register a new customer
type RegisterCustomerCommand struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	Address string
}

// RegisterCustomerHandler handles customer registration
type RegisterCustomerHandler struct {
	repo     domain.CustomerRepository
	validate *validator.Validate
}

// NewRegisterCustomerHandler creates a new register customer handler
func NewRegisterCustomerHandler(repo domain.CustomerRepository) *RegisterCustomerHandler {
	return &RegisterCustomerHandler{repo: repo, validate: validator.New()}
}

// Handle validates the command, rejects duplicate email or phone among
// active customers before any write, then creates the customer.
func (h *RegisterCustomerHandler) Handle(cmd RegisterCustomerCommand) (*domain.Customer, error) {
	if err := h.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}
	if !phonePattern.MatchString(cmd.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", apperr.ErrInvalidArgument)
	}

	emailTaken, err := h.repo.EmailInUse(cmd.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	}

	phoneTaken, err := h.repo.PhoneInUse(cmd.Phone, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if phoneTaken {
		return nil, fmt.Errorf("%w: phone already registered", apperr.ErrConflict)
	}

	customer := &domain.Customer{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Phone:   cmd.Phone,
		Address: cmd.Address,
		Active:  true,
	}
	if err := h.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}
	return customer, nil
}
