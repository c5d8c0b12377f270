package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
)

// ToggleActiveCommand represents the command to enable or disable an account
type ToggleActiveCommand struct {
	UserID uint
	Active bool
}

// ToggleActiveHandler handles account activation state
type ToggleActiveHandler struct {
	repo domain.UserRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.UserRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle flips the active flag. Deactivating the last active admin is
// refused.
func (h *ToggleActiveHandler) Handle(cmd ToggleActiveCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("%w: user id is required", apperr.ErrInvalidArgument)
	}

	if !cmd.Active {
		user, err := h.repo.FindByID(cmd.UserID)
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		if user.IsAdmin() {
			admins, err := h.repo.FindByRole(domain.RoleAdmin)
			if err != nil {
				return fmt.Errorf("failed to list admins: %w", err)
			}
			active := 0
			for _, a := range admins {
				if a.Active {
					active++
				}
			}
			if user.Active && active <= 1 {
				return fmt.Errorf("%w: cannot deactivate the last admin", apperr.ErrConflict)
			}
		}
	}

	if err := h.repo.SetActive(cmd.UserID, cmd.Active); err != nil {
		return fmt.Errorf("failed to toggle account: %w", err)
	}
	return nil
}
