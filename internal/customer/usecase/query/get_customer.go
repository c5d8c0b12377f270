package query

import (
	"fmt"

	"github.com/tansu/autoservice/internal/customer/domain"
)

// GetCustomerQuery represents the query to fetch a single customer
type GetCustomerQuery struct {
	CustomerID uint
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo}
}

// Handle executes the query. Soft-deleted customers are still returned;
// callers inspect the Active flag.
func (h *GetCustomerHandler) Handle(query GetCustomerQuery) (*domain.Customer, error) {
	customer, err := h.repo.FindByID(query.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}
