package customer

import (
	"context"
	"testing"

	domain "creditnest/internal/domain/customer"
	"creditnest/internal/testutil/customermock"
)

func TestApprovedLimit_RoundsUpToNearestLakh(t *testing.T) {
	tests := []struct {
		income float64
		want   float64
	}{
		{10_000, 400_000},  // 360 000 → next lakh
		{50_000, 1_800_000}, // exact multiple stays
		{1, 100_000},
	}
	for _, tt := range tests {
		if got := ApprovedLimit(tt.income); got != tt.want {
			t.Fatalf("ApprovedLimit(%v) = %v, want %v", tt.income, got, tt.want)
		}
	}
}

func TestRegister_Success(t *testing.T) {
	repo := &customermock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Customer) error {
			c.ID = 42
			return nil
		},
	}
	uc := NewUsecase(repo)

	dto, err := uc.Register(context.Background(), RegisterInput{
		FirstName:     "Asha",
		LastName:      "Rao",
		Age:           31,
		MonthlyIncome: 10_000,
		PhoneNumber:   "9876543210",
	})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if dto.CustomerID != 42 {
		t.Fatalf("CustomerID = %d, want 42", dto.CustomerID)
	}
	if dto.Name != "Asha Rao" {
		t.Fatalf("Name = %q", dto.Name)
	}
	if dto.ApprovedLimit != 400_000 {
		t.Fatalf("ApprovedLimit = %v, want 400000", dto.ApprovedLimit)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	uc := NewUsecase(&customermock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Customer) error {
			t.Fatal("Create must not be called for invalid input")
			return nil
		},
	})
	_, err := uc.Register(context.Background(), RegisterInput{FirstName: "x"})
	if err == nil {
		t.Fatal("want error")
	}
}
