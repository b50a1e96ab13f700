package debt

import (
	"context"
	"sync"
	"time"

	"creditnest/internal/domain/customer"
	"creditnest/internal/domain/loan"
	"creditnest/internal/usecase/credit"
	"creditnest/pkg/id"
	"creditnest/pkg/logger"
)

const defaultWorkers = 4

// Aggregator recomputes each customer's current debt as the summed balance
// projection of their active loans. One customer's failure is logged and
// skipped, never aborting the sweep; re-running is safe since the write is a
// plain overwrite.
type Aggregator struct {
	customers customer.Repository
	loans     loan.Repository
	log       logger.Logger
	workers   int
}

func NewAggregator(customers customer.Repository, loans loan.Repository, log logger.Logger, workers int) *Aggregator {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Aggregator{customers: customers, loans: loans, log: log, workers: workers}
}

// Refresh sweeps all customers. Only the initial customer listing can fail
// the sweep as a whole.
func (a *Aggregator) Refresh(ctx context.Context) error {
	sweep := id.NewID32()
	customers, err := a.customers.ListAll(ctx)
	if err != nil {
		return err
	}
	asOf := time.Now().UTC()

	jobs := make(chan customer.Customer)
	var wg sync.WaitGroup
	var failed int64
	var mu sync.Mutex

	for i := 0; i < a.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				if err := a.refreshOne(ctx, c, asOf); err != nil {
					mu.Lock()
					failed++
					mu.Unlock()
					a.log.Error("debt refresh failed for customer",
						"sweep", sweep, "customer_id", c.ID, "error", err)
				}
			}
		}()
	}
	for _, c := range customers {
		jobs <- c
	}
	close(jobs)
	wg.Wait()

	a.log.Info("debt sweep finished",
		"sweep", sweep, "customers", len(customers), "failed", failed)
	return nil
}

func (a *Aggregator) refreshOne(ctx context.Context, c customer.Customer, asOf time.Time) error {
	active, err := a.loans.ListActiveByCustomer(ctx, c.ID, asOf)
	if err != nil {
		return err
	}
	var total float64
	for _, l := range active {
		total += credit.RemainingBalance(l)
	}
	c.CurrentDebt = total
	return a.customers.Save(ctx, &c)
}
