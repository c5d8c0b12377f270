package domain

import "time"

// Role types
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleEmployee     = "employee"
	RoleReceptionist = "receptionist"
)

// ValidRole reports whether the given role is one of the known roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee, RoleReceptionist:
		return true
	}
	return false
}

// User represents a staff account. The password never leaves the
// persistence layer in clear text; only its bcrypt hash is stored.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	FullName     string `json:"full_name" gorm:"not null"`
	Role         string `json:"role" gorm:"not null;default:'employee'"`
	// Active has no column default: a default would make GORM skip the
	// field on insert whenever it is false, silently storing true.
	Active bool `json:"active" gorm:"not null"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	Update(user *User) error
	Delete(id uint) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByRole(role string) ([]User, error)
	FindAll(limit, offset int) ([]User, error)
	UpdateLastLogin(id uint, at time.Time) error
	UpdatePassword(id uint, passwordHash string) error
	SetActive(id uint, active bool) error
	Count() (int64, error)
	CountByRole(role string) (int64, error)
	ExistsByID(id uint) (bool, error)
}
