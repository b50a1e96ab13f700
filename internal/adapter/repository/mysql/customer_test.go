package mysql

import (
	"context"
	"errors"
	"testing"

	custDomain "creditnest/internal/domain/customer"
)

func TestCustomerRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer("Asha")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("expected autoincrement ID")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID err: %v", err)
	}
	if got.FirstName != "Asha" || got.MonthlySalary != 50_000 {
		t.Fatalf("unexpected customer: %+v", got)
	}
}

func TestCustomerRepository_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	if !errors.Is(err, custDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCustomerRepository_SaveUpdatesDebt(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer("Asha")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	c.CurrentDebt = 123_456.78
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save err: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID err: %v", err)
	}
	if got.CurrentDebt != 123_456.78 {
		t.Fatalf("CurrentDebt = %v, want 123456.78", got.CurrentDebt)
	}
}

func TestCustomerRepository_ListAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Asha", "Binod", "Chitra"} {
		if err := repo.Create(ctx, makeCustomer(name)); err != nil {
			t.Fatalf("Create err: %v", err)
		}
	}
	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll err: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].FirstName != "Asha" {
		t.Fatalf("expected id order, got %+v", all)
	}
}
