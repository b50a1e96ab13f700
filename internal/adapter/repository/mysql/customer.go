package mysql

import (
	"context"
	"errors"

	custDomain "creditnest/internal/domain/customer"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *custDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*custDomain.Customer, error) {
	var out custDomain.Customer
	res := r.db.WithContext(ctx).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, custDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *CustomerRepository) ListAll(ctx context.Context) ([]custDomain.Customer, error) {
	var out []custDomain.Customer
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *custDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}
