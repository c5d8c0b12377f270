package query

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
)

// GetUserQuery represents the query to get a user by id or username
type GetUserQuery struct {
	ID       uint
	Username string
}

// GetUserHandler handles single user lookups
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle looks up by id when given, otherwise by username
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	if q.ID != 0 {
		user, err := h.repo.FindByID(q.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		return user, nil
	}
	if q.Username != "" {
		user, err := h.repo.FindByUsername(q.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		return user, nil
	}
	return nil, fmt.Errorf("%w: id or username is required", apperr.ErrInvalidArgument)
}
