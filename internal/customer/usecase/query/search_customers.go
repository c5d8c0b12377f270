package query

import (
	"fmt"
	"strings"

	"github.com/tansu/autoservice/internal/customer/domain"
	apperr "github.com/tansu/autoservice/internal/domain"
)

// SearchCustomersQuery represents a keyword search over active customers
type SearchCustomersQuery struct {
	Keyword string
}

// SearchCustomersHandler handles customer search
type SearchCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewSearchCustomersHandler creates a new search customers handler
func NewSearchCustomersHandler(repo domain.CustomerRepository) *SearchCustomersHandler {
	return &SearchCustomersHandler{repo: repo}
}

// Handle matches the keyword case-insensitively against name, email, phone
// and address. Result order is the repository default; no ranking.
func (h *SearchCustomersHandler) Handle(query SearchCustomersQuery) ([]domain.Customer, error) {
	keyword := strings.TrimSpace(query.Keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", apperr.ErrInvalidArgument)
	}

	customers, err := h.repo.Search(keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}
