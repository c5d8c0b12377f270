package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/order/domain"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// AutoMigrate runs database migrations. The customers table must exist
// first; the schema carries a foreign key to it.
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{})
}

// Create inserts a new order and populates its generated identity. An order
// for a non-existent customer is rejected by the foreign key and surfaces
// as an integrity violation.
func (r *GormOrderRepository) Create(order *domain.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", apperr.Translate(err))
	}
	return nil
}

// Update persists every field of an existing order
func (r *GormOrderRepository) Update(order *domain.Order) error {
	if err := r.db.Save(order).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", apperr.Translate(err))
	}
	return nil
}

// UpdateStatus sets the status of a single order
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update order status: %w", apperr.ErrNotFound)
	}
	return nil
}

// Delete removes an order from the database
func (r *GormOrderRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete order: %w", apperr.ErrNotFound)
	}
	return nil
}

// FindByID retrieves an order by ID
func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find order: %w", apperr.Translate(err))
	}
	return &order, nil
}

// FindByCustomer retrieves all orders of a customer, newest first
func (r *GormOrderRepository) FindByCustomer(customerID uint) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.Where("customer_id = ?", customerID).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by customer: %w", err)
	}
	return orders, nil
}

// FindByStatus retrieves orders with the given status, newest first
func (r *GormOrderRepository) FindByStatus(status string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.Where("status = ?", status).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by status: %w", err)
	}
	return orders, nil
}

// FindByDateRange retrieves orders whose order date falls in [from, to],
// newest first
func (r *GormOrderRepository) FindByDateRange(from, to time.Time) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.Where("order_date BETWEEN ? AND ?", from, to).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by date range: %w", err)
	}
	return orders, nil
}

// FindAll retrieves all orders, newest first
func (r *GormOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	query := r.db.Order("order_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// Count returns the total number of orders
func (r *GormOrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of orders with the given status
func (r *GormOrderRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Order{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders by status: %w", err)
	}
	return count, nil
}

// ExistsByID reports whether an order with the given ID exists
func (r *GormOrderRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return count > 0, nil
}
