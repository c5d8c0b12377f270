package command

import (
	"fmt"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// CreateItemCommand represents the command to add a part to the inventory
type CreateItemCommand struct {
	Name        string
	SKU         string
	Category    string
	Quantity    int
	Unit        string
	MinQuantity int
	UnitPrice   float64
	CostPrice   float64
	SupplierID  *uint
}

// CreateItemHandler handles item creation
type CreateItemHandler struct {
	repo domain.ItemRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle validates the command and creates the item. A duplicate SKU is
// rejected before the write.
func (h *CreateItemHandler) Handle(cmd CreateItemCommand) (*domain.Item, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrInvalidArgument)
	}
	if cmd.Quantity < 0 || cmd.MinQuantity < 0 {
		return nil, fmt.Errorf("%w: quantities cannot be negative", apperr.ErrInvalidArgument)
	}
	if cmd.UnitPrice < 0 || cmd.CostPrice < 0 {
		return nil, fmt.Errorf("%w: prices cannot be negative", apperr.ErrInvalidArgument)
	}

	if cmd.SKU != "" {
		if _, err := h.repo.FindBySKU(cmd.SKU); err == nil {
			return nil, fmt.Errorf("%w: sku %s already exists", apperr.ErrConflict, cmd.SKU)
		} else if !apperr.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check sku: %w", err)
		}
	}

	item := &domain.Item{
		Name:        cmd.Name,
		SKU:         cmd.SKU,
		Category:    cmd.Category,
		Quantity:    cmd.Quantity,
		Unit:        cmd.Unit,
		MinQuantity: cmd.MinQuantity,
		UnitPrice:   cmd.UnitPrice,
		CostPrice:   cmd.CostPrice,
		SupplierID:  cmd.SupplierID,
		Active:      true,
	}
	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}
