package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
)

// DeleteUserCommand represents the command to delete an account
type DeleteUserCommand struct {
	UserID uint
}

// DeleteUserHandler handles account deletion
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle removes the account. Deleting the last admin is refused.
func (h *DeleteUserHandler) Handle(cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("%w: user id is required", apperr.ErrInvalidArgument)
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user.IsAdmin() {
		admins, err := h.repo.CountByRole(domain.RoleAdmin)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		if admins <= 1 {
			return fmt.Errorf("%w: cannot delete the last admin", apperr.ErrConflict)
		}
	}

	if err := h.repo.Delete(cmd.UserID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
