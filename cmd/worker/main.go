package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"creditnest/internal/adapter/repository/mysql"
	"creditnest/internal/config"
	"creditnest/internal/domain/customer"
	"creditnest/internal/domain/loan"
	"creditnest/internal/infrastructure/db"
	"creditnest/internal/ingest"
	"creditnest/internal/usecase/debt"
	"creditnest/pkg/logger"

	"github.com/joho/godotenv"
)

// The worker seeds CSV data once (when paths are configured) and then runs
// the debt aggregation sweep on an interval until signalled to stop.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&customer.Customer{}, &loan.Loan{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seedOnce(ctx, cfg, customers, loans, zl)

	aggregator := debt.NewAggregator(customers, loans, zl, cfg.DebtWorkers)
	interval := time.Duration(cfg.DebtRefreshIntervalSecs) * time.Second

	zl.Info("debt worker started", "interval", interval.String(), "workers", cfg.DebtWorkers)
	runSweep(ctx, aggregator, zl)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			zl.Info("debt worker stopping")
			return
		case <-ticker.C:
			runSweep(ctx, aggregator, zl)
		}
	}
}

func runSweep(ctx context.Context, agg *debt.Aggregator, zl logger.Logger) {
	if err := agg.Refresh(ctx); err != nil {
		zl.Error("debt sweep aborted", "error", err)
	}
}

func seedOnce(ctx context.Context, cfg *config.Config, customers customer.Repository, loans loan.Repository, zl logger.Logger) {
	if cfg.CustomerSeedPath == "" && cfg.LoanSeedPath == "" {
		return
	}
	seeder := ingest.NewSeeder(customers, loans, zl)
	if cfg.CustomerSeedPath != "" {
		res, err := seeder.SeedCustomerFile(ctx, cfg.CustomerSeedPath)
		if err != nil {
			zl.Error("customer seed failed", "path", cfg.CustomerSeedPath, "error", err)
		} else {
			zl.Info("customer seed done", "loaded", res.Loaded, "skipped", res.Skipped)
		}
	}
	if cfg.LoanSeedPath != "" {
		res, err := seeder.SeedLoanFile(ctx, cfg.LoanSeedPath)
		if err != nil {
			zl.Error("loan seed failed", "path", cfg.LoanSeedPath, "error", err)
		} else {
			zl.Info("loan seed done", "loaded", res.Loaded, "skipped", res.Skipped)
		}
	}
}
