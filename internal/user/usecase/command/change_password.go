package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
	"github.com/tansu/autoservice/pkg/auth"
)

// ChangePasswordCommand represents the command to change a user's password
type ChangePasswordCommand struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

// ChangePasswordHandler handles password changes
type ChangePasswordHandler struct {
	repo domain.UserRepository
}

// NewChangePasswordHandler creates a new change password handler
func NewChangePasswordHandler(repo domain.UserRepository) *ChangePasswordHandler {
	return &ChangePasswordHandler{repo: repo}
}

// Handle verifies the current password before accepting the new one.
// The new password must satisfy the strength policy.
func (h *ChangePasswordHandler) Handle(cmd ChangePasswordCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("%w: user id is required", apperr.ErrInvalidArgument)
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, cmd.OldPassword) {
		return apperr.ErrInvalidCredentials
	}

	if err := auth.ValidatePasswordStrength(cmd.NewPassword); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}

	hash, err := auth.HashPassword(cmd.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := h.repo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}
