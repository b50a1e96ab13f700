package customer

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("customer not found")
)

// Customer holds identity and affordability data. CurrentDebt is a derived
// aggregate recomputed from active loan projections; it never goes negative.
type Customer struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"customer_id"`
	FirstName     string    `gorm:"size:255" json:"first_name"`
	LastName      string    `gorm:"size:255" json:"last_name"`
	Age           int       `json:"age"`
	PhoneNumber   string    `gorm:"size:20" json:"phone_number"`
	MonthlySalary float64   `gorm:"type:decimal(18,2)" json:"monthly_salary"`
	ApprovedLimit float64   `gorm:"type:decimal(18,2)" json:"approved_limit"`
	CurrentDebt   float64   `gorm:"type:decimal(18,2);default:0" json:"current_debt"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customers" }
