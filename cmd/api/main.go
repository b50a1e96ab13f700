package main

import (
	"log"
	"time"

	httpadapter "creditnest/internal/adapter/http"
	custommw "creditnest/internal/adapter/middleware"
	"creditnest/internal/adapter/repository/mysql"
	"creditnest/internal/config"
	"creditnest/internal/domain/customer"
	"creditnest/internal/domain/loan"
	"creditnest/internal/infrastructure/cache"
	"creditnest/internal/infrastructure/db"
	custuc "creditnest/internal/usecase/customer"
	"creditnest/internal/usecase/debt"
	loanuc "creditnest/internal/usecase/loan"
	"creditnest/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

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

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	customerUC := custuc.NewUsecase(customers)
	loanUC := loanuc.NewUsecase(customers, loans, uow)
	aggregator := debt.NewAggregator(customers, loans, zl, cfg.DebtWorkers)

	h := httpadapter.NewHandler()
	ch := httpadapter.NewCustomerHandler(customerUC)
	lh := httpadapter.NewLoanHandler(loanUC)
	ah := httpadapter.NewAdminHandler(aggregator, zl)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadapter.NewValidator()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	idemp := custommw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)
	e.POST("/register", ch.Register, idemp)
	e.GET("/customers/:customer_id", ch.GetCustomer)
	e.POST("/check-eligibility", lh.CheckEligibility)
	e.POST("/create-loan", lh.CreateLoan, idemp)
	e.GET("/view-loan/:loan_id", lh.GetLoan)
	e.GET("/view-loans/:customer_id", lh.ListCustomerLoans)
	e.POST("/admin/refresh-debts", ah.RefreshDebts)

	e.Logger.Fatal(e.Start(":" + cfg.AppPort))
}
