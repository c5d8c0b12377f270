package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tansu/autoservice/internal/customer/domain"
	apperr "github.com/tansu/autoservice/internal/domain"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormCustomerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Customer{})
}

// Create inserts a new customer and populates its generated identity
func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", apperr.Translate(err))
	}
	return nil
}

// Update persists every field of an existing customer
func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", apperr.Translate(err))
	}
	return nil
}

// Delete soft deletes a customer by clearing its active flag. The row is
// kept and FindByID keeps returning it.
func (r *GormCustomerRepository) Delete(id uint) error {
	result := r.db.Model(&domain.Customer{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete customer: %w", apperr.ErrNotFound)
	}
	return nil
}

// FindByID retrieves a customer by ID regardless of its active flag
func (r *GormCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", apperr.Translate(err))
	}
	return &customer, nil
}

// FindByEmail retrieves an active customer by email
func (r *GormCustomerRepository) FindByEmail(email string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.Where("email = ? AND active = ?", email, true).First(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to find customer by email: %w", apperr.Translate(err))
	}
	return &customer, nil
}

// FindByPhone retrieves an active customer by phone
func (r *GormCustomerRepository) FindByPhone(phone string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.Where("phone = ? AND active = ?", phone, true).First(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to find customer by phone: %w", apperr.Translate(err))
	}
	return &customer, nil
}

// FindAll retrieves all customers ordered by name, soft-deleted included
func (r *GormCustomerRepository) FindAll(limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	query := r.db.Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}
	return customers, nil
}

// FindAllActive retrieves active customers ordered by name
func (r *GormCustomerRepository) FindAllActive(limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	query := r.db.Where("active = ?", true).Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to find active customers: %w", err)
	}
	return customers, nil
}

// Search finds active customers whose name, email, phone or address contains
// the keyword, case-insensitively, ordered by name
func (r *GormCustomerRepository) Search(keyword string) ([]domain.Customer, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	var customers []domain.Customer
	err := r.db.Where("active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("name").
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}

// AppendVehicleHistory appends an entry to the customer's vehicle-history
// log in a single statement so the log stays append-only under concurrent
// writers.
func (r *GormCustomerRepository) AppendVehicleHistory(id uint, entry string) error {
	result := r.db.Model(&domain.Customer{}).
		Where("id = ?", id).
		Update("vehicle_history", gorm.Expr("vehicle_history || ?", entry+"\n"))
	if result.Error != nil {
		return fmt.Errorf("failed to append vehicle history: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to append vehicle history: %w", apperr.ErrNotFound)
	}
	return nil
}

// EmailInUse reports whether an active customer other than excludeID holds
// the given email. Pass zero to exclude nobody.
func (r *GormCustomerRepository) EmailInUse(email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&domain.Customer{}).Where("email = ? AND active = ?", email, true)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// PhoneInUse reports whether an active customer other than excludeID holds
// the given phone number. Pass zero to exclude nobody.
func (r *GormCustomerRepository) PhoneInUse(phone string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&domain.Customer{}).Where("phone = ? AND active = ?", phone, true)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check phone: %w", err)
	}
	return count > 0, nil
}

// Count returns the total number of customers, soft-deleted included
func (r *GormCustomerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// CountActive returns the number of active customers
func (r *GormCustomerRepository) CountActive() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Customer{}).Where("active = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active customers: %w", err)
	}
	return count, nil
}

// ExistsByID reports whether a customer row with the given ID exists
func (r *GormCustomerRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return count > 0, nil
}
