package command

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
)

// UpdateUserCommand represents the command to update account details.
// Password and role changes go through their dedicated commands.
type UpdateUserCommand struct {
	ID       uint   `validate:"required"`
	Email    string `validate:"required,email"`
	FullName string `validate:"required,min=2,max=100"`
}

// UpdateUserHandler handles account detail updates
type UpdateUserHandler struct {
	repo     domain.UserRepository
	validate *validator.Validate
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo, validate: validator.New()}
}

// Handle executes the update
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if err := h.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if cmd.Email != user.Email {
		if existing, err := h.repo.FindByEmail(cmd.Email); err != nil && !apperr.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		} else if existing != nil && existing.ID != user.ID {
			return nil, fmt.Errorf("%w: email %s already taken", apperr.ErrConflict, cmd.Email)
		}
	}

	user.Email = cmd.Email
	user.FullName = cmd.FullName
	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
