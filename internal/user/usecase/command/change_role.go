package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
)

// ChangeRoleCommand represents the command to change a user's role
type ChangeRoleCommand struct {
	UserID uint
	Role   string
}

// ChangeRoleHandler handles role changes
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle changes the role. Demoting the last admin is refused so the
// system never ends up without one.
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) (*domain.User, error) {
	if !domain.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrInvalidArgument, cmd.Role)
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Role == cmd.Role {
		return user, nil
	}

	if user.IsAdmin() {
		admins, err := h.repo.CountByRole(domain.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to count admins: %w", err)
		}
		if admins <= 1 {
			return nil, fmt.Errorf("%w: cannot demote the last admin", apperr.ErrConflict)
		}
	}

	user.Role = cmd.Role
	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}
	return user, nil
}
