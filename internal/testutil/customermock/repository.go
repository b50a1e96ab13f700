package customermock

import (
	"context"
	"errors"

	domain "creditnest/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("customermock: method not implemented")

// Repo is a function-backed mock satisfying customer.Repository. Fill in only
// the fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn  func(ctx context.Context, c *domain.Customer) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Customer, error)
	ListAllFn func(ctx context.Context) ([]domain.Customer, error)
	SaveFn    func(ctx context.Context, c *domain.Customer) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Customer, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return errUnimplemented
}
