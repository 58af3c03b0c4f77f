package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("loan not found")
)

type Loan struct {
	// Public numeric identifier; assigned at creation or carried in from the
	// ingestion spreadsheet, never auto-incremented by the DB.
	LoanID             uint64          `gorm:"column:loan_id;primaryKey" json:"loan_id"`
	CustomerID         uint64          `gorm:"column:customer_id;index:idx_loans_customer" json:"customer_id"`
	Principal          decimal.Decimal `gorm:"type:decimal(12,2);column:loan_amount" json:"loan_amount"`
	TenureMonths       int             `gorm:"column:tenure" json:"tenure"`
	InterestRate       decimal.Decimal `gorm:"type:decimal(5,2);column:interest_rate" json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `gorm:"type:decimal(12,2);column:monthly_repayment" json:"monthly_installment"`
	EMIsPaidOnTime     int             `gorm:"column:emis_paid_on_time" json:"emis_paid_on_time"`
	StartDate          time.Time       `gorm:"type:date;column:start_date;index:idx_loans_start_date" json:"start_date"`
	EndDate            time.Time       `gorm:"type:date;column:end_date" json:"end_date"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }
