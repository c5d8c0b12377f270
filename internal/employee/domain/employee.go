package domain

import "time"

// Employee statuses
const (
	StatusActive   = "Active"
	StatusOnLeave  = "On Leave"
	StatusInactive = "Inactive"
)

// Employee represents a staff member. Email should be unique in practice
// but is not enforced at storage; hiring flows are expected to check.
type Employee struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Name     string   `json:"name" gorm:"not null"`
	Contact  string   `json:"contact"`
	Email    string   `json:"email" gorm:"index"`
	Position string   `json:"position"`
	Salary   *float64 `json:"salary,omitempty"`
	Status   string   `json:"status" gorm:"not null;default:'Active'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Employee) TableName() string {
	return "employees"
}

// EmployeeRepository defines the contract for employee data access
type EmployeeRepository interface {
	Create(employee *Employee) error
	Update(employee *Employee) error
	Delete(id uint) error
	FindByID(id uint) (*Employee, error)
	FindByEmail(email string) (*Employee, error)
	FindByStatus(status string) ([]Employee, error)
	FindAll(limit, offset int) ([]Employee, error)
	Search(keyword string) ([]Employee, error)
	Count() (int64, error)
	ExistsByID(id uint) (bool, error)
}
