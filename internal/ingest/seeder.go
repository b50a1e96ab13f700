// Package ingest loads customer and loan seed data from CSV exports of the
// upstream spreadsheets. Headers are normalized (lower-cased, spaces to
// underscores) and two legacy column names are renamed: monthly_payment
// becomes monthly_repayment, date_of_approval becomes start_date.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"creditnest/internal/domain/customer"
	"creditnest/internal/domain/loan"
	"creditnest/pkg/logger"
)

type Seeder struct {
	customers customer.Repository
	loans     loan.Repository
	log       logger.Logger
}

func NewSeeder(customers customer.Repository, loans loan.Repository, log logger.Logger) *Seeder {
	return &Seeder{customers: customers, loans: loans, log: log}
}

// Result counts what a single seeding pass did with the input rows.
type Result struct {
	Loaded  int
	Skipped int
}

var headerRenames = map[string]string{
	"monthly_payment":  "monthly_repayment",
	"date_of_approval": "start_date",
}

func normalizeHeader(raw []string) map[string]int {
	cols := make(map[string]int, len(raw))
	for i, h := range raw {
		name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
		if renamed, ok := headerRenames[name]; ok {
			name = renamed
		}
		cols[name] = i
	}
	return cols
}

type row struct {
	cols   map[string]int
	fields []string
	n      int
}

func (r row) get(name string) (string, error) {
	i, ok := r.cols[name]
	if !ok {
		return "", fmt.Errorf("row %d: missing column %q", r.n, name)
	}
	if i >= len(r.fields) {
		return "", fmt.Errorf("row %d: short record", r.n)
	}
	return strings.TrimSpace(r.fields[i]), nil
}

func (r row) uint64(name string) (uint64, error) {
	s, err := r.get(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: column %q: %w", r.n, name, err)
	}
	return v, nil
}

func (r row) int(name string) (int, error) {
	s, err := r.get(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("row %d: column %q: %w", r.n, name, err)
	}
	return v, nil
}

func (r row) float(name string) (float64, error) {
	s, err := r.get(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: column %q: %w", r.n, name, err)
	}
	return v, nil
}

var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "1/2/2006", "02-01-2006"}

func (r row) date(name string) (time.Time, error) {
	s, err := r.get(name)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range dateLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("row %d: column %q: unparseable date %q", r.n, name, s)
}

// SeedCustomers reads customer rows from r and inserts them. Rows that fail
// to parse or insert are logged and skipped; only reader level failures
// abort the pass.
func (s *Seeder) SeedCustomers(ctx context.Context, r io.Reader) (Result, error) {
	var res Result
	err := s.eachRow(r, func(rec row) {
		c, err := parseCustomer(rec)
		if err == nil {
			err = s.customers.Create(ctx, c)
		}
		if err != nil {
			res.Skipped++
			s.log.Warn("customer row skipped", "error", err)
			return
		}
		res.Loaded++
	})
	return res, err
}

// SeedLoans reads loan rows from r and inserts them. Duplicate loan_id rows
// are skipped, first occurrence wins.
func (s *Seeder) SeedLoans(ctx context.Context, r io.Reader) (Result, error) {
	var res Result
	seen := make(map[uint64]struct{})
	err := s.eachRow(r, func(rec row) {
		l, err := parseLoan(rec)
		if err != nil {
			res.Skipped++
			s.log.Warn("loan row skipped", "error", err)
			return
		}
		if _, dup := seen[l.ID]; dup {
			res.Skipped++
			s.log.Warn("duplicate loan_id skipped", "loan_id", l.ID)
			return
		}
		seen[l.ID] = struct{}{}
		if err := s.loans.Create(ctx, l); err != nil {
			res.Skipped++
			s.log.Warn("loan row skipped", "loan_id", l.ID, "error", err)
			return
		}
		res.Loaded++
	})
	return res, err
}

// SeedCustomerFile and SeedLoanFile are convenience wrappers for the worker
// binary, which gets file paths from config.

func (s *Seeder) SeedCustomerFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return s.SeedCustomers(ctx, f)
}

func (s *Seeder) SeedLoanFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return s.SeedLoans(ctx, f)
}

func (s *Seeder) eachRow(r io.Reader, fn func(row)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	cols := normalizeHeader(header)

	for n := 2; ; n++ {
		fields, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row %d: %w", n, err)
		}
		fn(row{cols: cols, fields: fields, n: n})
	}
}

func parseCustomer(r row) (*customer.Customer, error) {
	id, err := r.uint64("customer_id")
	if err != nil {
		return nil, err
	}
	first, err := r.get("first_name")
	if err != nil {
		return nil, err
	}
	last, err := r.get("last_name")
	if err != nil {
		return nil, err
	}
	age, err := r.int("age")
	if err != nil {
		return nil, err
	}
	phone, err := r.get("phone_number")
	if err != nil {
		return nil, err
	}
	salary, err := r.float("monthly_salary")
	if err != nil {
		return nil, err
	}
	limit, err := r.float("approved_limit")
	if err != nil {
		return nil, err
	}
	c := &customer.Customer{
		ID:            id,
		FirstName:     first,
		LastName:      last,
		Age:           age,
		PhoneNumber:   phone,
		MonthlySalary: salary,
		ApprovedLimit: limit,
	}
	// current_debt is optional in the exports; the aggregation sweep
	// recomputes it anyway.
	if _, ok := r.cols["current_debt"]; ok {
		if debt, err := r.float("current_debt"); err == nil {
			c.CurrentDebt = debt
		}
	}
	return c, nil
}

func parseLoan(r row) (*loan.Loan, error) {
	id, err := r.uint64("loan_id")
	if err != nil {
		return nil, err
	}
	custID, err := r.uint64("customer_id")
	if err != nil {
		return nil, err
	}
	amount, err := r.float("loan_amount")
	if err != nil {
		return nil, err
	}
	tenure, err := r.int("tenure")
	if err != nil {
		return nil, err
	}
	rate, err := r.float("interest_rate")
	if err != nil {
		return nil, err
	}
	repayment, err := r.float("monthly_repayment")
	if err != nil {
		return nil, err
	}
	paid, err := r.int("emis_paid_on_time")
	if err != nil {
		return nil, err
	}
	start, err := r.date("start_date")
	if err != nil {
		return nil, err
	}
	end, err := r.date("end_date")
	if err != nil {
		return nil, err
	}
	return &loan.Loan{
		ID:               id,
		CustomerID:       custID,
		LoanAmount:       amount,
		Tenure:           tenure,
		InterestRate:     rate,
		MonthlyRepayment: repayment,
		EMIsPaidOnTime:   paid,
		StartDate:        start,
		EndDate:          end,
	}, nil
}
