package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	// ListAll feeds the debt aggregation sweep.
	ListAll(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, c *Customer) error
}
