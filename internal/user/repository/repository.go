package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{})
}

// Create inserts a new user and populates its generated identity.
// Duplicate usernames or emails surface as a conflict.
func (r *GormUserRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", apperr.Translate(err))
	}
	return nil
}

// Update persists every field of an existing user
func (r *GormUserRepository) Update(user *domain.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", apperr.Translate(err))
	}
	return nil
}

// Delete removes a user from the database
func (r *GormUserRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete user: %w", apperr.ErrNotFound)
	}
	return nil
}

// FindByID retrieves a user by ID
func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find user: %w", apperr.Translate(err))
	}
	return &user, nil
}

// FindByUsername retrieves a user by username
func (r *GormUserRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", apperr.Translate(err))
	}
	return &user, nil
}

// FindByEmail retrieves a user by email
func (r *GormUserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", apperr.Translate(err))
	}
	return &user, nil
}

// FindByRole retrieves users with the given role, ordered by username
func (r *GormUserRepository) FindByRole(role string) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.Where("role = ?", role).Order("username").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by role: %w", err)
	}
	return users, nil
}

// FindAll retrieves users ordered by username
func (r *GormUserRepository) FindAll(limit, offset int) ([]domain.User, error) {
	var users []domain.User
	query := r.db.Order("username")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

// UpdateLastLogin stamps the last successful login time
func (r *GormUserRepository) UpdateLastLogin(id uint, at time.Time) error {
	result := r.db.Model(&domain.User{}).Where("id = ?", id).UpdateColumn("last_login_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to update last login: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update last login: %w", apperr.ErrNotFound)
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *GormUserRepository) UpdatePassword(id uint, passwordHash string) error {
	result := r.db.Model(&domain.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update password: %w", apperr.ErrNotFound)
	}
	return nil
}

// SetActive toggles whether the account may log in
func (r *GormUserRepository) SetActive(id uint, active bool) error {
	result := r.db.Model(&domain.User{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to set active flag: %w", apperr.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to set active flag: %w", apperr.ErrNotFound)
	}
	return nil
}

// Count returns the total number of users
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountByRole returns the number of users with the given role
func (r *GormUserRepository) CountByRole(role string) (int64, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}

// ExistsByID reports whether a user with the given ID exists
func (r *GormUserRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}
