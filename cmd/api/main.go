package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "credit-approval-service/internal/adapter/http"
	"credit-approval-service/internal/adapter/middleware"
	"credit-approval-service/internal/adapter/repository/mysql"
	"credit-approval-service/internal/config"
	customerDomain "credit-approval-service/internal/domain/customer"
	loanDomain "credit-approval-service/internal/domain/loan"
	"credit-approval-service/internal/infrastructure/cache"
	"credit-approval-service/internal/infrastructure/db"
	customerUC "credit-approval-service/internal/usecase/customer"
	loanUC "credit-approval-service/internal/usecase/loan"
)

func main() {
	_ = godotenv.Load() // best effort; real env wins

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&customerDomain.Customer{}, &loanDomain.Loan{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	custHandler := httpadp.NewCustomerHandler(customerUC.NewUsecase(customers, guow))
	loanHandler := httpadp.NewLoanHandler(loanUC.NewUsecase(customers, loans, guow))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)
	e.POST("/register", custHandler.Register)
	e.GET("/customer/:customer_id", custHandler.Get)
	e.POST("/check-eligibility", loanHandler.CheckEligibility)
	e.POST("/create-loan", loanHandler.CreateLoan)
	e.GET("/view-loan/:loan_id", loanHandler.ViewLoan)
	e.GET("/view-loans/:customer_id", loanHandler.ViewCustomerLoans)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
