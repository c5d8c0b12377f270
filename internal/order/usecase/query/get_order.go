package query

import (
	"fmt"

	"github.com/tansu/autoservice/internal/order/domain"
)

// GetOrderQuery represents the query to fetch a single order
type GetOrderQuery struct {
	OrderID uint
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	order, err := h.repo.FindByID(query.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}
