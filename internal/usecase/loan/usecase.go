package loan

import (
	"context"
	"errors"
	"time"

	"creditnest/internal/domain/customer"
	"creditnest/internal/domain/loan"
	"creditnest/internal/domain/uow"
	"creditnest/internal/usecase/credit"
)

type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(customers customer.Repository, loans loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{customers: customers, loans: loans, uow: tx}
}

type LoanRequestInput struct {
	CustomerID   uint64  `json:"customer_id"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

type EligibilityDTO struct {
	CustomerID            uint64  `json:"customer_id"`
	Approval              bool    `json:"approval"`
	InterestRate          float64 `json:"interest_rate"`
	CorrectedInterestRate float64 `json:"corrected_interest_rate"`
	Tenure                int     `json:"tenure"`
	MonthlyInstallment    float64 `json:"monthly_installment"`
}

type CreateLoanDTO struct {
	LoanID             *uint64  `json:"loan_id"`
	CustomerID         uint64   `json:"customer_id"`
	LoanApproved       bool     `json:"loan_approved"`
	Message            string   `json:"message"`
	MonthlyInstallment *float64 `json:"monthly_installment"`
}

func (in LoanRequestInput) validate() error {
	if in.CustomerID == 0 || in.LoanAmount <= 0 || in.Tenure <= 0 || in.InterestRate < 0 {
		return errors.New("invalid input")
	}
	return nil
}

// evaluate runs the full decision pipeline: score from history, then the
// eligibility policy over the requested terms.
func (u *Usecase) evaluate(ctx context.Context, in LoanRequestInput, now time.Time) (*customer.Customer, bool, float64, error) {
	cust, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, false, 0, err
	}
	history, err := u.loans.ListByCustomer(ctx, in.CustomerID)
	if err != nil {
		return nil, false, 0, err
	}

	score := credit.Score(history, *cust, now)
	approved, effectiveRate := credit.Eligibility(score, in.InterestRate, *cust, history, now)
	return cust, approved, effectiveRate, nil
}

func (u *Usecase) CheckEligibility(ctx context.Context, in LoanRequestInput) (*EligibilityDTO, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	_, approved, effectiveRate, err := u.evaluate(ctx, in, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	installment := 0.0
	if approved {
		installment = credit.MonthlyInstallment(effectiveRate, in.Tenure, in.LoanAmount)
	}
	return &EligibilityDTO{
		CustomerID:            in.CustomerID,
		Approval:              approved,
		InterestRate:          in.InterestRate,
		CorrectedInterestRate: effectiveRate,
		Tenure:                in.Tenure,
		MonthlyInstallment:    installment,
	}, nil
}

// CreateLoan evaluates the request and, when approved, writes the loan and
// the customer's refreshed debt in one transaction so a half-created loan is
// never visible.
func (u *Usecase) CreateLoan(ctx context.Context, in LoanRequestInput) (*CreateLoanDTO, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	_, approved, effectiveRate, err := u.evaluate(ctx, in, now)
	if err != nil {
		return nil, err
	}

	if !approved {
		return &CreateLoanDTO{
			CustomerID:   in.CustomerID,
			LoanApproved: false,
			Message:      "loan not approved",
		}, nil
	}

	installment := credit.MonthlyInstallment(effectiveRate, in.Tenure, in.LoanAmount)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	l := &loan.Loan{
		CustomerID:       in.CustomerID,
		LoanAmount:       in.LoanAmount,
		Tenure:           in.Tenure,
		InterestRate:     effectiveRate,
		MonthlyRepayment: installment,
		EMIsPaidOnTime:   0,
		StartDate:        start,
		EndDate:          start.AddDate(0, in.Tenure, 0),
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		c, err := r.Customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		c.CurrentDebt += credit.RemainingBalance(*l)
		return r.Customers.Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	return &CreateLoanDTO{
		LoanID:             &l.ID,
		CustomerID:         in.CustomerID,
		LoanApproved:       true,
		Message:            "loan approved",
		MonthlyInstallment: &installment,
	}, nil
}
