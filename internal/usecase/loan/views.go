package loan

import (
	"context"
	"time"
)

type LoanCustomerDTO struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

type LoanDetailDTO struct {
	LoanID             uint64          `json:"loan_id"`
	Customer           LoanCustomerDTO `json:"customer"`
	LoanAmount         float64         `json:"loan_amount"`
	InterestRate       float64         `json:"interest_rate"`
	Tenure             int             `json:"tenure"`
	MonthlyInstallment float64         `json:"monthly_installment"`
}

type LoanSummaryDTO struct {
	LoanID             uint64  `json:"loan_id"`
	LoanAmount         float64 `json:"loan_amount"`
	InterestRate       float64 `json:"interest_rate"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	RepaymentsLeft     int     `json:"repayments_left"`
}

func (u *Usecase) GetLoan(ctx context.Context, loanID uint64) (*LoanDetailDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	cust, err := u.customers.GetByID(ctx, l.CustomerID)
	if err != nil {
		return nil, err
	}
	return &LoanDetailDTO{
		LoanID: l.ID,
		Customer: LoanCustomerDTO{
			FirstName:   cust.FirstName,
			LastName:    cust.LastName,
			PhoneNumber: cust.PhoneNumber,
			Age:         cust.Age,
		},
		LoanAmount:         l.LoanAmount,
		InterestRate:       l.InterestRate,
		Tenure:             l.Tenure,
		MonthlyInstallment: l.MonthlyRepayment,
	}, nil
}

// ListActiveLoans returns the customer's running loans with the count of
// installments still due.
func (u *Usecase) ListActiveLoans(ctx context.Context, customerID uint64) ([]LoanSummaryDTO, error) {
	if _, err := u.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	active, err := u.loans.ListActiveByCustomer(ctx, customerID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	out := make([]LoanSummaryDTO, 0, len(active))
	for _, l := range active {
		out = append(out, LoanSummaryDTO{
			LoanID:             l.ID,
			LoanAmount:         l.LoanAmount,
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyRepayment,
			RepaymentsLeft:     l.RepaymentsLeft(),
		})
	}
	return out, nil
}
