package query

import (
	"fmt"

	"github.com/tansu/autoservice/internal/customer/domain"
)

// ListCustomersQuery represents the query to list active customers
type ListCustomersQuery struct {
	Limit  int
	Offset int
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle returns active customers, ordered by name.
func (h *ListCustomersHandler) Handle(query ListCustomersQuery) ([]domain.Customer, error) {
	customers, err := h.repo.FindAllActive(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
