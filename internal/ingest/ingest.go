// Package ingest loads the customer and loan seed spreadsheets into the
// database. Rows upsert by their sheet-carried IDs so reruns are safe; bad
// rows are collected as errors instead of aborting the whole file.
package ingest

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
	"credit-approval-service/internal/domain/uow"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// The customer sheet has no age column.
const defaultAge = 25

type Result struct {
	CustomersCreated int
	CustomersUpdated int
	LoansCreated     int
	LoansUpdated     int
	Errors           []string
}

func (r *Result) merge(other Result) {
	r.CustomersCreated += other.CustomersCreated
	r.CustomersUpdated += other.CustomersUpdated
	r.LoansCreated += other.LoansCreated
	r.LoansUpdated += other.LoansUpdated
	r.Errors = append(r.Errors, other.Errors...)
}

func (r *Result) Summary() string {
	return fmt.Sprintf("customers created=%d updated=%d, loans created=%d updated=%d, errors=%d",
		r.CustomersCreated, r.CustomersUpdated, r.LoansCreated, r.LoansUpdated, len(r.Errors))
}

type Ingestor struct {
	uow uow.UnitOfWork
}

func New(u uow.UnitOfWork) *Ingestor { return &Ingestor{uow: u} }

// IngestAll runs customers first so loan rows can resolve their customer.
func (i *Ingestor) IngestAll(ctx context.Context, customerPath, loanPath string) (Result, error) {
	res, err := i.IngestCustomers(ctx, customerPath)
	if err != nil {
		return res, err
	}
	loanRes, err := i.IngestLoans(ctx, loanPath)
	res.merge(loanRes)
	return res, err
}

// IngestCustomers reads rows of the form:
// customer_id | first_name | last_name | phone_number | monthly_salary | approved_limit | current_debt
func (i *Ingestor) IngestCustomers(ctx context.Context, path string) (Result, error) {
	var res Result
	rows, err := sheetRows(path)
	if err != nil {
		return res, err
	}

	for n, row := range rows {
		if n == 0 || emptyRow(row) { // header / padding
			continue
		}
		c, err := parseCustomerRow(row)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s row %d: %v", path, n+1, err))
			continue
		}
		err = i.uow.WithinTx(ctx, func(r uow.Repos) error {
			created, err := r.Customers.Upsert(ctx, c)
			if err != nil {
				return err
			}
			if created {
				res.CustomersCreated++
			} else {
				res.CustomersUpdated++
			}
			return nil
		})
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s row %d: %v", path, n+1, err))
		}
	}
	return res, nil
}

// IngestLoans reads rows of the form:
// customer_id | loan_id | loan_amount | tenure | interest_rate | monthly_repayment | emis_paid_on_time | start_date | end_date
func (i *Ingestor) IngestLoans(ctx context.Context, path string) (Result, error) {
	var res Result
	rows, err := sheetRows(path)
	if err != nil {
		return res, err
	}

	for n, row := range rows {
		if n == 0 || emptyRow(row) {
			continue
		}
		l, err := parseLoanRow(row)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s row %d: %v", path, n+1, err))
			continue
		}
		err = i.uow.WithinTx(ctx, func(r uow.Repos) error {
			// loan rows reference customers by ID; skip orphans
			if _, err := r.Customers.GetByID(ctx, l.CustomerID); err != nil {
				return fmt.Errorf("customer %d not found for loan %d", l.CustomerID, l.LoanID)
			}
			created, err := r.Loans.Upsert(ctx, l)
			if err != nil {
				return err
			}
			if created {
				res.LoansCreated++
			} else {
				res.LoansUpdated++
			}
			return nil
		})
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s row %d: %v", path, n+1, err))
		}
	}
	return res, nil
}

func sheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return f.GetRows(f.GetSheetName(0))
}

func emptyRow(row []string) bool {
	return len(row) == 0 || strings.TrimSpace(row[0]) == ""
}

func parseCustomerRow(row []string) (*customer.Customer, error) {
	if len(row) < 6 {
		return nil, fmt.Errorf("expected at least 6 columns, got %d", len(row))
	}
	customerID, err := parseUint(row[0], "customer_id")
	if err != nil {
		return nil, err
	}
	phone, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("phone_number %q: %w", row[3], err)
	}
	salary, err := parseDecimal(row[4], "monthly_salary")
	if err != nil {
		return nil, err
	}
	limit, err := parseDecimal(row[5], "approved_limit")
	if err != nil {
		return nil, err
	}
	debt := decimal.Zero
	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		if debt, err = parseDecimal(row[6], "current_debt"); err != nil {
			return nil, err
		}
	}
	return &customer.Customer{
		CustomerID:    customerID,
		FirstName:     strings.TrimSpace(row[1]),
		LastName:      strings.TrimSpace(row[2]),
		Age:           defaultAge,
		PhoneNumber:   phone,
		MonthlySalary: salary,
		ApprovedLimit: limit,
		CurrentDebt:   debt,
	}, nil
}

func parseLoanRow(row []string) (*loan.Loan, error) {
	if len(row) < 9 {
		return nil, fmt.Errorf("expected 9 columns, got %d", len(row))
	}
	customerID, err := parseUint(row[0], "customer_id")
	if err != nil {
		return nil, err
	}
	loanID, err := parseUint(row[1], "loan_id")
	if err != nil {
		return nil, err
	}
	amount, err := parseDecimal(row[2], "loan_amount")
	if err != nil {
		return nil, err
	}
	tenure, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return nil, fmt.Errorf("tenure %q: %w", row[3], err)
	}
	rate, err := parseDecimal(row[4], "interest_rate")
	if err != nil {
		return nil, err
	}
	installment, err := parseDecimal(row[5], "monthly_repayment")
	if err != nil {
		return nil, err
	}
	paid, err := strconv.Atoi(strings.TrimSpace(row[6]))
	if err != nil {
		return nil, fmt.Errorf("emis_paid_on_time %q: %w", row[6], err)
	}
	start, err := parseDate(row[7])
	if err != nil {
		return nil, fmt.Errorf("start_date %q: %w", row[7], err)
	}
	end, err := parseDate(row[8])
	if err != nil {
		return nil, fmt.Errorf("end_date %q: %w", row[8], err)
	}
	return &loan.Loan{
		LoanID:             loanID,
		CustomerID:         customerID,
		Principal:          amount,
		TenureMonths:       tenure,
		InterestRate:       rate,
		MonthlyInstallment: installment,
		EMIsPaidOnTime:     paid,
		StartDate:          start,
		EndDate:            end,
	}, nil
}

func parseUint(s, field string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, s, err)
	}
	return v, nil
}

func parseDecimal(s, field string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", field, s, err)
	}
	return v, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006",
	time.RFC3339,
}

// parseDate accepts the layouts excelize renders for date cells, plus raw
// Excel serial numbers for unformatted cells.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date")
}
