package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/supplier/domain"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GORM supplier repository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormSupplierRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Supplier{})
}

// Create inserts a new supplier and populates its generated identity.
// The active flag is derived from the status before the write.
func (r *GormSupplierRepository) Create(supplier *domain.Supplier) error {
	supplier.SyncActive()
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", apperr.Translate(err))
	}
	return nil
}

// Update persists every field of an existing supplier, re-deriving the
// active flag from the status
func (r *GormSupplierRepository) Update(supplier *domain.Supplier) error {
	supplier.SyncActive()
	if err := r.db.Save(supplier).Error; err != nil {
		return fmt.Errorf("failed to update supplier: %w", apperr.Translate(err))
	}
	return nil
}

// Delete removes a supplier from the database
func (r *GormSupplierRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Supplier{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete supplier: %w", apperr.ErrNotFound)
	}
	return nil
}

// FindByID retrieves a supplier by ID
func (r *GormSupplierRepository) FindByID(id uint) (*domain.Supplier, error) {
	var supplier domain.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find supplier: %w", apperr.Translate(err))
	}
	return &supplier, nil
}

// FindByStatus retrieves suppliers with the given status, by company name
func (r *GormSupplierRepository) FindByStatus(status string) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := r.db.Where("status = ?", status).Order("company_name").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to find suppliers by status: %w", err)
	}
	return suppliers, nil
}

// FindByCategory retrieves suppliers in the given category, by company name
func (r *GormSupplierRepository) FindByCategory(category string) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := r.db.Where("category = ?", category).Order("company_name").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to find suppliers by category: %w", err)
	}
	return suppliers, nil
}

// FindAll retrieves all suppliers ordered by company name
func (r *GormSupplierRepository) FindAll(limit, offset int) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	query := r.db.Order("company_name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to find suppliers: %w", err)
	}
	return suppliers, nil
}

// FindAllActive retrieves active suppliers ordered by company name
func (r *GormSupplierRepository) FindAllActive() ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := r.db.Where("active = ?", true).Order("company_name").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to find active suppliers: %w", err)
	}
	return suppliers, nil
}

// Search finds suppliers whose company name, contact person, email or
// category contains the keyword, case-insensitively
func (r *GormSupplierRepository) Search(keyword string) ([]domain.Supplier, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	var suppliers []domain.Supplier
	err := r.db.Where(
		"LOWER(company_name) LIKE ? OR LOWER(contact_person) LIKE ? OR LOWER(email) LIKE ? OR LOWER(category) LIKE ?",
		pattern, pattern, pattern, pattern).
		Order("company_name").
		Find(&suppliers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search suppliers: %w", err)
	}
	return suppliers, nil
}

// Count returns the total number of suppliers
func (r *GormSupplierRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Supplier{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return count, nil
}

// ExistsByID reports whether a supplier with the given ID exists
func (r *GormSupplierRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Supplier{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check supplier existence: %w", err)
	}
	return count > 0, nil
}
