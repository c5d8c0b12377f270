package query

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// GetItemQuery represents the query to get an item by id or SKU
type GetItemQuery struct {
	ID  uint
	SKU string
}

// GetItemHandler handles single item lookups
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle looks up by id when given, otherwise by SKU
func (h *GetItemHandler) Handle(q GetItemQuery) (*domain.Item, error) {
	if q.ID != 0 {
		item, err := h.repo.FindByID(q.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get item: %w", err)
		}
		return item, nil
	}
	if q.SKU != "" {
		item, err := h.repo.FindBySKU(q.SKU)
		if err != nil {
			return nil, fmt.Errorf("failed to get item: %w", err)
		}
		return item, nil
	}
	return nil, fmt.Errorf("%w: id or sku is required", apperr.ErrInvalidArgument)
}
