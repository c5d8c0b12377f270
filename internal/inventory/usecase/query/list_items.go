package query

import (
	"fmt"

	"github.com/tansu/autoservice/internal/inventory/domain"
)

// ListItemsQuery represents the query to list inventory items.
// Filters apply in order: keyword search, category, then a plain page.
type ListItemsQuery struct {
	Keyword  string
	Category string
	Limit    int
	Offset   int
}

// ListItemsHandler handles inventory listings
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the listing
func (h *ListItemsHandler) Handle(q ListItemsQuery) ([]domain.Item, error) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var (
		items []domain.Item
		err   error
	)
	switch {
	case q.Keyword != "":
		items, err = h.repo.Search(q.Keyword)
	case q.Category != "":
		items, err = h.repo.FindByCategory(q.Category)
	default:
		items, err = h.repo.FindAll(limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
