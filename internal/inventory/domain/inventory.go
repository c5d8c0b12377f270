package domain

import (
	"time"

	supplierdomain "github.com/tansu/autoservice/internal/supplier/domain"
)

// Item represents a stocked part or consumable. Quantity never goes
// negative: reductions happen through a conditional update that checks
// and decrements in one statement.
type Item struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	SKU      string `json:"sku" gorm:"not null;index"`
	Category string `json:"category" gorm:"index"`
	Quantity int    `json:"quantity" gorm:"not null;default:0"`
	Unit     string `json:"unit" gorm:"default:'pcs'"`
	// MinQuantity is the low-stock threshold.
	MinQuantity int     `json:"min_quantity" gorm:"not null;default:0"`
	UnitPrice   float64 `json:"unit_price" gorm:"not null;default:0"`
	CostPrice   float64 `json:"cost_price" gorm:"not null;default:0"`

	SupplierID *uint                    `json:"supplier_id,omitempty" gorm:"index"`
	Supplier   *supplierdomain.Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	LastRestockedAt *time.Time `json:"last_restocked_at,omitempty"`
	// Active has no column default: a default would make GORM skip the
	// field on insert whenever it is false, silently storing true.
	Active bool `json:"active" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether the item is above zero but at or below its
// low-stock threshold.
func (i *Item) IsLowStock() bool {
	return i.Quantity > 0 && i.Quantity <= i.MinQuantity
}

// IsOutOfStock reports whether the item has no stock left.
func (i *Item) IsOutOfStock() bool {
	return i.Quantity <= 0
}

// ItemRepository defines the contract for inventory data access.
//
// ReduceStock succeeds only when the current quantity covers the amount;
// the check and the decrement are one atomic statement against the store,
// and an insufficient balance reports false rather than an error so callers
// can tell a declined reduction from an infrastructure failure.
type ItemRepository interface {
	Create(item *Item) error
	Update(item *Item) error
	Delete(id uint) error
	FindByID(id uint) (*Item, error)
	FindBySKU(sku string) (*Item, error)
	FindByCategory(category string) ([]Item, error)
	FindAll(limit, offset int) ([]Item, error)
	FindLowStock() ([]Item, error)
	FindOutOfStock() ([]Item, error)
	Search(keyword string) ([]Item, error)
	ReduceStock(id uint, amount int) (bool, error)
	AddStock(id uint, amount int) error
	UpdateQuantity(id uint, quantity int) error
	TotalStockValue() (float64, error)
	Count() (int64, error)
	ExistsByID(id uint) (bool, error)
}
