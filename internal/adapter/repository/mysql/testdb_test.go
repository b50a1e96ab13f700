package mysql

import (
	"testing"
	"time"

	custDomain "creditnest/internal/domain/customer"
	loanDomain "creditnest/internal/domain/loan"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates both tables. The
// domain models carry no MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&custDomain.Customer{}, &loanDomain.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeCustomer(first string) *custDomain.Customer {
	return &custDomain.Customer{
		FirstName:     first,
		LastName:      "Rao",
		Age:           31,
		PhoneNumber:   "9876543210",
		MonthlySalary: 50_000,
		ApprovedLimit: 1_800_000,
	}
}

func makeLoan(customerID uint64, start time.Time, tenure int) *loanDomain.Loan {
	return &loanDomain.Loan{
		CustomerID:       customerID,
		LoanAmount:       100_000,
		Tenure:           tenure,
		InterestRate:     12,
		MonthlyRepayment: 8_884.88,
		EMIsPaidOnTime:   0,
		StartDate:        start,
		EndDate:          start.AddDate(0, tenure, 0),
	}
}
