package query

import (
	"fmt"

	"github.com/tansu/autoservice/internal/user/domain"
)

// UserStats summarizes the account population per role
type UserStats struct {
	Total         int64 `json:"total"`
	Admins        int64 `json:"admins"`
	Managers      int64 `json:"managers"`
	Employees     int64 `json:"employees"`
	Receptionists int64 `json:"receptionists"`
}

// GetStatsHandler handles account statistics
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle gathers the per-role counts
func (h *GetStatsHandler) Handle() (*UserStats, error) {
	stats := &UserStats{}

	var err error
	if stats.Total, err = h.repo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.Admins, err = h.repo.CountByRole(domain.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	if stats.Managers, err = h.repo.CountByRole(domain.RoleManager); err != nil {
		return nil, fmt.Errorf("failed to count managers: %w", err)
	}
	if stats.Employees, err = h.repo.CountByRole(domain.RoleEmployee); err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if stats.Receptionists, err = h.repo.CountByRole(domain.RoleReceptionist); err != nil {
		return nil, fmt.Errorf("failed to count receptionists: %w", err)
	}
	return stats, nil
}
