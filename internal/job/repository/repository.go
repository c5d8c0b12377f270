package repository

import (
	"fmt"

	"gorm.io/gorm"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/job/domain"
)

// GormJobRepository implements JobRepository using GORM
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM job repository
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// AutoMigrate runs database migrations. The orders and employees tables
// must exist first.
func (r *GormJobRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Job{})
}

// Create inserts a new job and populates its generated identity. Jobs for
// non-existent orders or employees are rejected by the foreign keys.
func (r *GormJobRepository) Create(job *domain.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", apperr.Translate(err))
	}
	return nil
}

// Update persists every field of an existing job
func (r *GormJobRepository) Update(job *domain.Job) error {
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", apperr.Translate(err))
	}
	return nil
}

// UpdateStatus sets the status of a single job
func (r *GormJobRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&domain.Job{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update job status: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update job status: %w", apperr.ErrNotFound)
	}
	return nil
}

// Delete removes a job from the database
func (r *GormJobRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Job{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete job: %w", apperr.ErrNotFound)
	}
	return nil
}

// FindByID retrieves a job by ID
func (r *GormJobRepository) FindByID(id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find job: %w", apperr.Translate(err))
	}
	return &job, nil
}

// FindByOrder retrieves all jobs on an order
func (r *GormJobRepository) FindByOrder(orderID uint) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.Where("order_id = ?", orderID).Order("id").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs by order: %w", err)
	}
	return jobs, nil
}

// FindByEmployee retrieves all jobs assigned to an employee
func (r *GormJobRepository) FindByEmployee(employeeID uint) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.Where("employee_id = ?", employeeID).Order("id").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs by employee: %w", err)
	}
	return jobs, nil
}

// FindByStatus retrieves jobs with the given status
func (r *GormJobRepository) FindByStatus(status string) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.Where("status = ?", status).Order("id").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs by status: %w", err)
	}
	return jobs, nil
}

// FindAll retrieves all jobs
func (r *GormJobRepository) FindAll(limit, offset int) ([]domain.Job, error) {
	var jobs []domain.Job
	query := r.db.Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

// Count returns the total number of jobs
func (r *GormJobRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Job{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

// CountActiveByEmployee returns the employee's workload: jobs not yet
// completed
func (r *GormJobRepository) CountActiveByEmployee(employeeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Job{}).
		Where("employee_id = ? AND status <> ?", employeeID, domain.StatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return count, nil
}

// ExistsByID reports whether a job with the given ID exists
func (r *GormJobRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Job{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return count > 0, nil
}
