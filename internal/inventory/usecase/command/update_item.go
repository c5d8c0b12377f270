package command

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// UpdateItemCommand represents the command to update an inventory item
type UpdateItemCommand struct {
	ID          uint    `validate:"required"`
	Name        string  `validate:"required,min=2,max=150"`
	SKU         string  `validate:"required,min=3,max=40"`
	Category    string  `validate:"max=60"`
	Unit        string  `validate:"max=20"`
	MinQuantity int     `validate:"gte=0"`
	UnitPrice   float64 `validate:"gte=0"`
	CostPrice   float64 `validate:"gte=0"`
	SupplierID  *uint
	Active      bool
}

// UpdateItemHandler handles inventory item updates
type UpdateItemHandler struct {
	repo     domain.ItemRepository
	validate *validator.Validate
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo, validate: validator.New()}
}

// Handle updates item attributes. Quantity is not touched here; stock
// levels change only through the dedicated stock commands.
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.Item, error) {
	if err := h.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}

	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	if cmd.SKU != item.SKU {
		existing, err := h.repo.FindBySKU(cmd.SKU)
		if err != nil && !apperr.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check sku: %w", err)
		}
		if existing != nil && existing.ID != item.ID {
			return nil, fmt.Errorf("%w: sku %s already in use", apperr.ErrConflict, cmd.SKU)
		}
	}

	item.Name = cmd.Name
	item.SKU = cmd.SKU
	item.Category = cmd.Category
	item.Unit = cmd.Unit
	item.MinQuantity = cmd.MinQuantity
	item.UnitPrice = cmd.UnitPrice
	item.CostPrice = cmd.CostPrice
	item.SupplierID = cmd.SupplierID
	item.Active = cmd.Active

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}
