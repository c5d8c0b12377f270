package domain

import (
	"time"

	employeedomain "github.com/tansu/autoservice/internal/employee/domain"
	orderdomain "github.com/tansu/autoservice/internal/order/domain"
)

// Job statuses
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Job represents a unit of work on an order, assigned to one employee.
// An order may carry many jobs and an employee may hold many jobs at once.
type Job struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	OrderID    uint `json:"order_id" gorm:"not null;index"`
	EmployeeID uint `json:"employee_id" gorm:"not null;index"`

	Order    *orderdomain.Order       `json:"order,omitempty" gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Employee *employeedomain.Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Description string `json:"description" gorm:"not null"`
	Status      string `json:"status" gorm:"not null;default:'Pending'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Job) TableName() string {
	return "jobs"
}

// JobRepository defines the contract for job data access.
// CountActiveByEmployee is the employee's workload: the number of
// non-Completed jobs assigned to them.
type JobRepository interface {
	Create(job *Job) error
	Update(job *Job) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	FindByID(id uint) (*Job, error)
	FindByOrder(orderID uint) ([]Job, error)
	FindByEmployee(employeeID uint) ([]Job, error)
	FindByStatus(status string) ([]Job, error)
	FindAll(limit, offset int) ([]Job, error)
	Count() (int64, error)
	CountActiveByEmployee(employeeID uint) (int64, error)
	ExistsByID(id uint) (bool, error)
}
