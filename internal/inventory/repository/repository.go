package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM inventory repository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// AutoMigrate runs database migrations. The suppliers table must exist
// first; supplier_id carries a nullable foreign key to it.
func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{})
}

// Create inserts a new item and populates its generated identity. A blank
// SKU gets a generated one.
func (r *GormItemRepository) Create(item *domain.Item) error {
	if item.SKU == "" {
		item.SKU = "SKU-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", apperr.Translate(err))
	}
	return nil
}

// Update persists every field of an existing item
func (r *GormItemRepository) Update(item *domain.Item) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update item: %w", apperr.Translate(err))
	}
	return nil
}

// Delete removes an item from the database
func (r *GormItemRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Item{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete item: %w", apperr.ErrNotFound)
	}
	return nil
}

// FindByID retrieves an item by ID
func (r *GormItemRepository) FindByID(id uint) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find item: %w", apperr.Translate(err))
	}
	return &item, nil
}

// FindBySKU retrieves an item by its SKU
func (r *GormItemRepository) FindBySKU(sku string) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.Where("sku = ?", sku).First(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to find item by sku: %w", apperr.Translate(err))
	}
	return &item, nil
}

// FindByCategory retrieves active items in the given category, by name
func (r *GormItemRepository) FindByCategory(category string) ([]domain.Item, error) {
	var items []domain.Item
	if err := r.db.Where("category = ? AND active = ?", category, true).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by category: %w", err)
	}
	return items, nil
}

// FindAll retrieves all items ordered by name
func (r *GormItemRepository) FindAll(limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	query := r.db.Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}
	return items, nil
}

// FindLowStock retrieves active items whose quantity is above zero but at
// or below their threshold. The query reads live quantities; no threshold
// state is cached.
func (r *GormItemRepository) FindLowStock() ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Where("active = ? AND quantity > 0 AND quantity <= min_quantity", true).
		Order("name").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find low-stock items: %w", err)
	}
	return items, nil
}

// FindOutOfStock retrieves active items with no stock left
func (r *GormItemRepository) FindOutOfStock() ([]domain.Item, error) {
	var items []domain.Item
	if err := r.db.Where("active = ? AND quantity <= 0", true).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find out-of-stock items: %w", err)
	}
	return items, nil
}

// Search finds active items whose name, SKU or category contains the
// keyword, case-insensitively, ordered by name
func (r *GormItemRepository) Search(keyword string) ([]domain.Item, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	var items []domain.Item
	err := r.db.Where("active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern, pattern).
		Order("name").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return items, nil
}

// ReduceStock decrements an item's quantity iff enough stock exists. The
// condition and the decrement run as one UPDATE so concurrent reducers
// can never drive the quantity negative. It reports false when the stock
// did not cover the amount (or the item does not exist); errors are
// infrastructure failures only.
func (r *GormItemRepository) ReduceStock(id uint, amount int) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("%w: amount must be positive", apperr.ErrInvalidArgument)
	}
	result := r.db.Model(&domain.Item{}).
		Where("id = ? AND quantity >= ?", id, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if result.Error != nil {
		return false, fmt.Errorf("failed to reduce stock: %w", apperr.Translate(result.Error))
	}
	return result.RowsAffected == 1, nil
}

// AddStock increments an item's quantity unconditionally and stamps the
// restock time.
func (r *GormItemRepository) AddStock(id uint, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperr.ErrInvalidArgument)
	}
	result := r.db.Model(&domain.Item{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"quantity":          gorm.Expr("quantity + ?", amount),
			"last_restocked_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to add stock: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to add stock: %w", apperr.ErrNotFound)
	}
	return nil
}

// UpdateQuantity sets an item's quantity to an absolute value. This is an
// administrative override that skips the non-negative check; callers must
// validate the value first.
func (r *GormItemRepository) UpdateQuantity(id uint, quantity int) error {
	result := r.db.Model(&domain.Item{}).Where("id = ?", id).UpdateColumn("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update quantity: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update quantity: %w", apperr.ErrNotFound)
	}
	return nil
}

// TotalStockValue returns the summed cost value of all active stock
func (r *GormItemRepository) TotalStockValue() (float64, error) {
	var value *float64
	err := r.db.Model(&domain.Item{}).
		Where("active = ?", true).
		Select("SUM(quantity * cost_price)").
		Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute stock value: %w", err)
	}
	if value == nil {
		return 0, nil
	}
	return *value, nil
}

// Count returns the total number of items
func (r *GormItemRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Item{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

// ExistsByID reports whether an item with the given ID exists
func (r *GormItemRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Item{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check item existence: %w", err)
	}
	return count > 0, nil
}
