package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/employee/domain"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GORM employee repository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormEmployeeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Employee{})
}

// Create inserts a new employee and populates its generated identity
func (r *GormEmployeeRepository) Create(employee *domain.Employee) error {
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", apperr.Translate(err))
	}
	return nil
}

// Update persists every field of an existing employee
func (r *GormEmployeeRepository) Update(employee *domain.Employee) error {
	if err := r.db.Save(employee).Error; err != nil {
		return fmt.Errorf("failed to update employee: %w", apperr.Translate(err))
	}
	return nil
}

// Delete removes an employee from the database
func (r *GormEmployeeRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete employee: %w", apperr.ErrNotFound)
	}
	return nil
}

// FindByID retrieves an employee by ID
func (r *GormEmployeeRepository) FindByID(id uint) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", apperr.Translate(err))
	}
	return &employee, nil
}

// FindByEmail retrieves an employee by email
func (r *GormEmployeeRepository) FindByEmail(email string) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, fmt.Errorf("failed to find employee by email: %w", apperr.Translate(err))
	}
	return &employee, nil
}

// FindByStatus retrieves employees with the given status, ordered by name
func (r *GormEmployeeRepository) FindByStatus(status string) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := r.db.Where("status = ?", status).Order("name").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to find employees by status: %w", err)
	}
	return employees, nil
}

// FindAll retrieves all employees ordered by name
func (r *GormEmployeeRepository) FindAll(limit, offset int) ([]domain.Employee, error) {
	var employees []domain.Employee
	query := r.db.Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	return employees, nil
}

// Search finds employees whose name, email or position contains the keyword,
// case-insensitively, ordered by name
func (r *GormEmployeeRepository) Search(keyword string) ([]domain.Employee, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	var employees []domain.Employee
	err := r.db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(position) LIKE ?",
		pattern, pattern, pattern).
		Order("name").
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return employees, nil
}

// Count returns the total number of employees
func (r *GormEmployeeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Employee{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// ExistsByID reports whether an employee with the given ID exists
func (r *GormEmployeeRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Employee{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return count > 0, nil
}
