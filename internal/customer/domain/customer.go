package domain

import "time"

// Customer represents a shop customer. Customers are never physically
// removed: deletion clears the active flag and the row stays queryable
// by identity.
type Customer struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null;index"`
	Phone   string `json:"phone" gorm:"not null;index"`
	Address string `json:"address"`
	// VehicleHistory is an append-only free-text log of service visits.
	VehicleHistory string `json:"vehicle_history" gorm:"type:text;not null;default:''"`
	// Active has no column default: a default would make GORM skip the
	// field on insert whenever it is false, silently storing true.
	Active    bool      `json:"active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CustomerRepository defines the contract for customer data access.
// Email and phone uniqueness among active customers is enforced by the
// usecase layer through EmailInUse/PhoneInUse, not by a storage constraint,
// because soft-deleted rows keep their values.
type CustomerRepository interface {
	Create(customer *Customer) error
	Update(customer *Customer) error
	// Delete performs a soft delete: the active flag is cleared and the
	// row remains visible to FindByID.
	Delete(id uint) error
	FindByID(id uint) (*Customer, error)
	FindByEmail(email string) (*Customer, error)
	FindByPhone(phone string) (*Customer, error)
	FindAll(limit, offset int) ([]Customer, error)
	FindAllActive(limit, offset int) ([]Customer, error)
	Search(keyword string) ([]Customer, error)
	AppendVehicleHistory(id uint, entry string) error
	EmailInUse(email string, excludeID uint) (bool, error)
	PhoneInUse(phone string, excludeID uint) (bool, error)
	Count() (int64, error)
	CountActive() (int64, error)
	ExistsByID(id uint) (bool, error)
}
