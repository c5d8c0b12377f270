package query

import (
	"fmt"

	"github.com/tansu/autoservice/internal/user/domain"
)

// ListUsersQuery represents the query to list accounts, optionally by role
type ListUsersQuery struct {
	Role   string
	Limit  int
	Offset int
}

// ListUsersHandler handles account listings
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the listing
func (h *ListUsersHandler) Handle(q ListUsersQuery) ([]domain.User, error) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var (
		users []domain.User
		err   error
	)
	if q.Role != "" {
		users, err = h.repo.FindByRole(q.Role)
	} else {
		users, err = h.repo.FindAll(limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
