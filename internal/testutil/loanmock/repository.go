package loanmock

import (
	"context"
	"errors"
	"time"

	domain "creditnest/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock satisfying loan.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListByCustomerFn       func(ctx context.Context, customerID uint64) ([]domain.Loan, error)
	ListActiveByCustomerFn func(ctx context.Context, customerID uint64, asOf time.Time) ([]domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Loan, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListActiveByCustomer(ctx context.Context, customerID uint64, asOf time.Time) ([]domain.Loan, error) {
	if m.ListActiveByCustomerFn != nil {
		return m.ListActiveByCustomerFn(ctx, customerID, asOf)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return errUnimplemented
}
