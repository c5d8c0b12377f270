package domain

import (
	"time"

	customerdomain "github.com/tansu/autoservice/internal/customer/domain"
)

// Order statuses
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Order represents a service order for a customer's vehicle.
type Order struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	CustomerID uint `json:"customer_id" gorm:"not null;index"`
	// Customer backs the foreign key; it is not preloaded by default.
	Customer *customerdomain.Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	OrderDate     time.Time `json:"order_date" gorm:"not null;index"`
	VehicleModel  string    `json:"vehicle_model" gorm:"not null"`
	VehicleNumber string    `json:"vehicle_number" gorm:"not null"`
	Status        string    `json:"status" gorm:"not null;default:'Pending'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the order may move to the given status.
// Transitions only run forward: Pending -> In Progress -> Completed, with
// Cancelled reachable until the work is completed.
func (o *Order) CanTransitionTo(status string) bool {
	switch o.Status {
	case StatusPending:
		return status == StatusInProgress || status == StatusCancelled
	case StatusInProgress:
		return status == StatusCompleted || status == StatusCancelled
	default:
		return false
	}
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	Update(order *Order) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	FindByID(id uint) (*Order, error)
	FindByCustomer(customerID uint) ([]Order, error)
	FindByStatus(status string) ([]Order, error)
	FindByDateRange(from, to time.Time) ([]Order, error)
	FindAll(limit, offset int) ([]Order, error)
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	ExistsByID(id uint) (bool, error)
}
