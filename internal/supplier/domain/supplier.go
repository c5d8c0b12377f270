package domain

import "time"

// Supplier statuses; the Active flag is derived from the status on every
// write and must never disagree with it.
const (
	StatusActive      = "Active"
	StatusInactive    = "Inactive"
	StatusBlacklisted = "Blacklisted"
)

// Supplier represents a parts supplier.
type Supplier struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	CompanyName   string `json:"company_name" gorm:"not null"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" gorm:"index"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Category      string `json:"category" gorm:"index"`
	Status        string `json:"status" gorm:"not null;default:'Active'"`
	// Active has no column default: a default would make GORM skip the
	// field on insert whenever it is false, silently storing true.
	Active bool   `json:"active" gorm:"not null"`
	Notes  string `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Supplier) TableName() string {
	return "suppliers"
}

// ValidStatus reports whether s is a known supplier status.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusBlacklisted:
		return true
	}
	return false
}

// SyncActive derives the active flag from the status.
func (s *Supplier) SyncActive() {
	s.Active = s.Status == StatusActive
}

// SupplierRepository defines the contract for supplier data access
type SupplierRepository interface {
	Create(supplier *Supplier) error
	Update(supplier *Supplier) error
	Delete(id uint) error
	FindByID(id uint) (*Supplier, error)
	FindByStatus(status string) ([]Supplier, error)
	FindByCategory(category string) ([]Supplier, error)
	FindAll(limit, offset int) ([]Supplier, error)
	FindAllActive() ([]Supplier, error)
	Search(keyword string) ([]Supplier, error)
	Count() (int64, error)
	ExistsByID(id uint) (bool, error)
}
