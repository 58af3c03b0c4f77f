package loan

import "github.com/shopspring/decimal"

type EligibilityInput struct {
	CustomerID   uint64          `json:"customer_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TenureMonths int             `json:"tenure"`
}

type EligibilityDTO struct {
	CustomerID            uint64          `json:"customer_id"`
	Approval              bool            `json:"approval"`
	InterestRate          decimal.Decimal `json:"interest_rate"`
	CorrectedInterestRate decimal.Decimal `json:"corrected_interest_rate"`
	TenureMonths          int             `json:"tenure"`
	MonthlyInstallment    decimal.Decimal `json:"monthly_installment"`
	CreditScore           int             `json:"credit_score"`
	Message               string          `json:"message,omitempty"`
}

type CreateLoanDTO struct {
	LoanID             *uint64         `json:"loan_id"`
	CustomerID         uint64          `json:"customer_id"`
	LoanApproved       bool            `json:"loan_approved"`
	Message            string          `json:"message"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

type CustomerSummaryDTO struct {
	ID          uint64 `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber int64  `json:"phone_number"`
	Age         int    `json:"age"`
}

type LoanDetailDTO struct {
	LoanID             uint64             `json:"loan_id"`
	Customer           CustomerSummaryDTO `json:"customer"`
	LoanAmount         decimal.Decimal    `json:"loan_amount"`
	InterestRate       decimal.Decimal    `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal    `json:"monthly_installment"`
	TenureMonths       int                `json:"tenure"`
}

type CustomerLoanDTO struct {
	LoanID             uint64          `json:"loan_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	RepaymentsLeft     int             `json:"repayments_left"`
}
