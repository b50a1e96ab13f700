package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// ListByCustomer returns the customer's full loan history (scoring input).
	ListByCustomer(ctx context.Context, customerID uint64) ([]Loan, error)
	// ListActiveByCustomer returns loans whose end date is on or after asOf.
	ListActiveByCustomer(ctx context.Context, customerID uint64, asOf time.Time) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
