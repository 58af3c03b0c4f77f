package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"credit-approval-service/internal/adapter/repository/mysql"
	"credit-approval-service/internal/config"
	customerDomain "credit-approval-service/internal/domain/customer"
	loanDomain "credit-approval-service/internal/domain/loan"
	"credit-approval-service/internal/infrastructure/db"
	"credit-approval-service/internal/ingest"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	customerPath := flag.String("customers", cfg.CustomerDataPath, "path to customer_data.xlsx")
	loanPath := flag.String("loans", cfg.LoanDataPath, "path to loan_data.xlsx")
	flag.Parse()

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

	ing := ingest.New(mysql.NewGormUoW(gdb))
	res, err := ing.IngestAll(context.Background(), *customerPath, *loanPath)
	if err != nil {
		log.Fatalf("ingest: %v", err)
	}

	log.Printf("ingest: %s", res.Summary())
	for _, e := range res.Errors {
		log.Printf("ingest: %s", e)
	}
}
