package command

import (
	"context"
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
	"github.com/tansu/autoservice/pkg/auth"
	"github.com/tansu/autoservice/pkg/logger"
)

// BootstrapAdminCommand seeds the very first administrator account
type BootstrapAdminCommand struct {
	Username string
	Email    string
	Password string
	FullName string
}

// BootstrapAdminHandler creates the initial admin when the user table is
// empty. On a populated table it does nothing, so running it on every
// startup is safe.
type BootstrapAdminHandler struct {
	repo domain.UserRepository
}

// NewBootstrapAdminHandler creates a new bootstrap admin handler
func NewBootstrapAdminHandler(repo domain.UserRepository) *BootstrapAdminHandler {
	return &BootstrapAdminHandler{repo: repo}
}

// Handle seeds the admin account. It reports whether an account was
// created.
func (h *BootstrapAdminHandler) Handle(cmd BootstrapAdminCommand) (bool, error) {
	count, err := h.repo.Count()
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if cmd.Username == "" || cmd.Password == "" {
		return false, fmt.Errorf("%w: bootstrap credentials are required", apperr.ErrInvalidArgument)
	}
	if err := auth.ValidatePasswordStrength(cmd.Password); err != nil {
		return false, fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: hash,
		FullName:     cmd.FullName,
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	if err := h.repo.Create(admin); err != nil {
		// A concurrent bootstrap may have won the race; that is fine.
		if apperr.IsConflict(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	logger.Info(context.Background()).Str("username", admin.Username).Msg("seeded initial admin account")
	return true, nil
}
