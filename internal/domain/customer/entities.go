package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("customer not found")
)

type Customer struct {
	// Public numeric identifier; assigned by registration or carried in from
	// the ingestion spreadsheet, never auto-incremented by the DB.
	CustomerID    uint64          `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	FirstName     string          `gorm:"size:100;column:first_name" json:"first_name"`
	LastName      string          `gorm:"size:100;column:last_name" json:"last_name"`
	Age           int             `gorm:"column:age" json:"age"`
	PhoneNumber   int64           `gorm:"column:phone_number;index:idx_customers_phone" json:"phone_number"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(12,2);column:monthly_salary" json:"monthly_salary"`
	ApprovedLimit decimal.Decimal `gorm:"type:decimal(12,2);column:approved_limit" json:"approved_limit"`
	CurrentDebt   decimal.Decimal `gorm:"type:decimal(12,2);column:current_debt" json:"current_debt"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) FullName() string { return c.FirstName + " " + c.LastName }
