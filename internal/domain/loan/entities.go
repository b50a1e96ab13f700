package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("loan not found")
)

// Loan belongs to exactly one customer; rows are removed together with the
// customer (ON DELETE CASCADE at the schema level).
//
// Invariants: 0 <= EMIsPaidOnTime <= Tenure and
// EndDate = StartDate + Tenure months. InterestRate is a nominal annual rate
// in percent.
type Loan struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"loan_id"`
	CustomerID       uint64    `gorm:"not null;index:idx_loans_customer" json:"customer_id"`
	LoanAmount       float64   `gorm:"type:decimal(18,2)" json:"loan_amount"`
	Tenure           int       `json:"tenure"`
	InterestRate     float64   `gorm:"type:decimal(6,2)" json:"interest_rate"`
	MonthlyRepayment float64   `gorm:"type:decimal(18,2)" json:"monthly_repayment"`
	EMIsPaidOnTime   int       `gorm:"column:emis_paid_on_time" json:"emis_paid_on_time"`
	StartDate        time.Time `gorm:"type:date" json:"start_date"`
	EndDate          time.Time `gorm:"type:date;index:idx_loans_end_date" json:"end_date"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Active reports whether the loan is still running as of the given day.
func (l Loan) Active(asOf time.Time) bool { return !l.EndDate.Before(asOf) }

// RepaymentsLeft is the count of contractual installments not yet paid.
func (l Loan) RepaymentsLeft() int { return l.Tenure - l.EMIsPaidOnTime }
