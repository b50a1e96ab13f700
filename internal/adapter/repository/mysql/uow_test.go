package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"creditnest/internal/domain/uow"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	cust := makeCustomer("Asha")
	if err := NewCustomerRepository(db).Create(ctx, cust); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(cust.ID, time.Now().UTC(), 12)
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		c, err := r.Customers.GetByID(ctx, cust.ID)
		if err != nil {
			return err
		}
		c.CurrentDebt = 100_000
		return r.Customers.Save(ctx, c)
	})
	if err != nil {
		t.Fatalf("WithinTx err: %v", err)
	}

	got, err := NewCustomerRepository(db).GetByID(ctx, cust.ID)
	if err != nil {
		t.Fatalf("GetByID err: %v", err)
	}
	if got.CurrentDebt != 100_000 {
		t.Fatalf("CurrentDebt = %v, want 100000", got.CurrentDebt)
	}
	loans, err := NewLoanRepository(db).ListByCustomer(ctx, cust.ID)
	if err != nil {
		t.Fatalf("ListByCustomer err: %v", err)
	}
	if len(loans) != 1 {
		t.Fatalf("loans = %d, want 1", len(loans))
	}
}

func TestGormUoW_WithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	cust := makeCustomer("Asha")
	if err := NewCustomerRepository(db).Create(ctx, cust); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	boom := errors.New("debt update failed")
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeLoan(cust.ID, time.Now().UTC(), 12)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	// The loan insert must have been rolled back with the error.
	loans, err := NewLoanRepository(db).ListByCustomer(ctx, cust.ID)
	if err != nil {
		t.Fatalf("ListByCustomer err: %v", err)
	}
	if len(loans) != 0 {
		t.Fatalf("loans = %d, want 0 after rollback", len(loans))
	}
}
