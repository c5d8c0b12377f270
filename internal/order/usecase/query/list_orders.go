package query

import (
	"fmt"
	"time"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/order/domain"
)

// ListOrdersQuery lists orders, optionally filtered by status or customer
// or restricted to a date range.
type ListOrdersQuery struct {
	Status     string
	CustomerID uint
	From       time.Time
	To         time.Time
	Limit      int
	Offset     int
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the query. Filters are mutually exclusive; the first one
// set wins: customer, then date range, then status.
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]domain.Order, error) {
	switch {
	case query.CustomerID != 0:
		orders, err := h.repo.FindByCustomer(query.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders by customer: %w", err)
		}
		return orders, nil
	case !query.From.IsZero() || !query.To.IsZero():
		if query.From.IsZero() || query.To.IsZero() || query.To.Before(query.From) {
			return nil, fmt.Errorf("%w: invalid date range", apperr.ErrInvalidArgument)
		}
		orders, err := h.repo.FindByDateRange(query.From, query.To)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders by date range: %w", err)
		}
		return orders, nil
	case query.Status != "":
		if !domain.ValidStatus(query.Status) {
			return nil, fmt.Errorf("%w: invalid status: %s", apperr.ErrInvalidArgument, query.Status)
		}
		orders, err := h.repo.FindByStatus(query.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders by status: %w", err)
		}
		return orders, nil
	default:
		orders, err := h.repo.FindAll(query.Limit, query.Offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}
		return orders, nil
	}
}
