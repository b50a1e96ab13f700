package customer

import (
	"context"
	"errors"
	"math"

	"creditnest/internal/domain/customer"
)

type Usecase struct{ repo customer.Repository }

func NewUsecase(r customer.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
	PhoneNumber   string  `json:"phone_number"`
}

type CustomerDTO struct {
	CustomerID    uint64  `json:"customer_id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
	ApprovedLimit float64 `json:"approved_limit"`
	PhoneNumber   string  `json:"phone_number"`
	CurrentDebt   float64 `json:"current_debt"`
}

// ApprovedLimit derives the pre-approved credit limit from monthly income:
// 36x the income, rounded up to the nearest lakh (100 000).
func ApprovedLimit(monthlyIncome float64) float64 {
	return math.Ceil(monthlyIncome*36/100_000) * 100_000
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*CustomerDTO, error) {
	if in.FirstName == "" || in.LastName == "" || in.MonthlyIncome <= 0 || in.Age <= 0 {
		return nil, errors.New("invalid input")
	}

	c := &customer.Customer{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Age:           in.Age,
		PhoneNumber:   in.PhoneNumber,
		MonthlySalary: in.MonthlyIncome,
		ApprovedLimit: ApprovedLimit(in.MonthlyIncome),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*CustomerDTO, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func toDTO(c *customer.Customer) *CustomerDTO {
	return &CustomerDTO{
		CustomerID:    c.ID,
		Name:          c.FirstName + " " + c.LastName,
		Age:           c.Age,
		MonthlyIncome: c.MonthlySalary,
		ApprovedLimit: c.ApprovedLimit,
		PhoneNumber:   c.PhoneNumber,
		CurrentDebt:   c.CurrentDebt,
	}
}
