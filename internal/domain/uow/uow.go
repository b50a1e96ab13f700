package uow

import (
	"context"

	"creditnest/internal/domain/customer"
	"creditnest/internal/domain/loan"
)

type Repos struct {
	Customers customer.Repository
	Loans     loan.Repository
}

// UnitOfWork runs fn with repos bound to a single transaction. Loan creation
// uses it so the loan insert and the customer debt update commit atomically.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
