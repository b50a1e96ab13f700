package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "creditnest/internal/domain/loan"
)

func TestLoanRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(1, time.Now().UTC(), 12)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID err: %v", err)
	}
	if got.CustomerID != 1 || got.Tenure != 12 {
		t.Fatalf("unexpected loan: %+v", got)
	}
}

func TestLoanRepository_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoanRepository_ListByCustomer(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	// Two loans for customer 1, one for customer 2.
	if err := repo.Create(ctx, makeLoan(1, now.AddDate(-2, 0, 0), 12)); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if err := repo.Create(ctx, makeLoan(1, now, 12)); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if err := repo.Create(ctx, makeLoan(2, now, 12)); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	got, err := repo.ListByCustomer(ctx, 1)
	if err != nil {
		t.Fatalf("ListByCustomer err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestLoanRepository_ListActiveByCustomer_FiltersByEndDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	expired := makeLoan(1, now.AddDate(-2, 0, 0), 12) // ended a year ago
	running := makeLoan(1, now.AddDate(0, -6, 0), 24) // 18 months to go
	if err := repo.Create(ctx, expired); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if err := repo.Create(ctx, running); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	got, err := repo.ListActiveByCustomer(ctx, 1, now)
	if err != nil {
		t.Fatalf("ListActiveByCustomer err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != running.ID {
		t.Fatalf("got loan %d, want %d", got[0].ID, running.ID)
	}
}
