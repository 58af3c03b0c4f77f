package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"credit-approval-service/internal/credit"
	customerDomain "credit-approval-service/internal/domain/customer"
	loanDomain "credit-approval-service/internal/domain/loan"
	"credit-approval-service/internal/domain/uow"
)

const msgApproved = "Loan approved successfully"

type Usecase struct {
	customers customerDomain.Repository
	loans     loanDomain.Repository
	uow       uow.UnitOfWork

	// evaluation clock; overridable in tests
	nowFn func() time.Time
}

func NewUsecase(customers customerDomain.Repository, loans loanDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{customers: customers, loans: loans, uow: tx, nowFn: time.Now}
}

// CheckEligibility runs the decision pipeline without persisting anything.
func (u *Usecase) CheckEligibility(ctx context.Context, in EligibilityInput) (*EligibilityDTO, error) {
	cust, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerDomain.ErrNotFound
		}
		return nil, err
	}
	history, err := u.loans.ListByCustomerID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	d, err := credit.Decide(cust, in.LoanAmount, in.InterestRate, in.TenureMonths, history, u.nowFn().UTC())
	if err != nil {
		return nil, err
	}
	return &EligibilityDTO{
		CustomerID:            in.CustomerID,
		Approval:              d.Approved,
		InterestRate:          d.InterestRate,
		CorrectedInterestRate: d.CorrectedRate,
		TenureMonths:          in.TenureMonths,
		MonthlyInstallment:    d.MonthlyInstallment,
		CreditScore:           d.CreditScore,
		Message:               d.Reason,
	}, nil
}

// Create decides and, on approval, persists the loan and bumps the customer's
// current debt, all inside one customer-locked transaction.
func (u *Usecase) Create(ctx context.Context, in EligibilityInput) (*CreateLoanDTO, error) {
	var out *CreateLoanDTO

	err := u.uow.WithinCustomerTx(ctx, in.CustomerID, func(r uow.Repos, cust *customerDomain.Customer) error {
		history, err := r.Loans.ListByCustomerID(ctx, in.CustomerID)
		if err != nil {
			return err
		}

		now := u.nowFn().UTC()
		d, err := credit.Decide(cust, in.LoanAmount, in.InterestRate, in.TenureMonths, history, now)
		if err != nil {
			return err
		}

		if !d.Approved {
			msg := d.Reason
			if msg == "" {
				msg = "Loan not approved based on credit criteria"
			}
			out = &CreateLoanDTO{
				CustomerID:         in.CustomerID,
				LoanApproved:       false,
				Message:            msg,
				MonthlyInstallment: d.MonthlyInstallment,
			}
			return nil
		}

		id, err := r.Loans.NextID(ctx)
		if err != nil {
			return fmt.Errorf("next loan id: %w", err)
		}
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		l := &loanDomain.Loan{
			LoanID:             id,
			CustomerID:         in.CustomerID,
			Principal:          in.LoanAmount,
			TenureMonths:       in.TenureMonths,
			InterestRate:       d.CorrectedRate,
			MonthlyInstallment: d.MonthlyInstallment,
			EMIsPaidOnTime:     0,
			StartDate:          start,
			EndDate:            start.AddDate(0, in.TenureMonths, 0),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		cust.CurrentDebt = cust.CurrentDebt.Add(in.LoanAmount)
		if err := r.Customers.Save(ctx, cust); err != nil {
			return err
		}

		out = &CreateLoanDTO{
			LoanID:             &l.LoanID,
			CustomerID:         in.CustomerID,
			LoanApproved:       true,
			Message:            msgApproved,
			MonthlyInstallment: d.MonthlyInstallment,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (u *Usecase) View(ctx context.Context, loanID uint64) (*LoanDetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	cust, err := u.customers.GetByID(ctx, l.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerDomain.ErrNotFound
		}
		return nil, err
	}
	return &LoanDetailDTO{
		LoanID: l.LoanID,
		Customer: CustomerSummaryDTO{
			ID:          cust.CustomerID,
			FirstName:   cust.FirstName,
			LastName:    cust.LastName,
			PhoneNumber: cust.PhoneNumber,
			Age:         cust.Age,
		},
		LoanAmount:         l.Principal,
		InterestRate:       l.InterestRate,
		MonthlyInstallment: l.MonthlyInstallment,
		TenureMonths:       l.TenureMonths,
	}, nil
}

// ListByCustomer returns every loan the customer holds, newest first is the
// repository's ordering concern.
func (u *Usecase) ListByCustomer(ctx context.Context, customerID uint64) ([]CustomerLoanDTO, error) {
	if _, err := u.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerDomain.ErrNotFound
		}
		return nil, err
	}
	loans, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := u.nowFn().UTC()
	out := make([]CustomerLoanDTO, 0, len(loans))
	for _, l := range loans {
		out = append(out, CustomerLoanDTO{
			LoanID:             l.LoanID,
			LoanAmount:         l.Principal,
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyInstallment,
			RepaymentsLeft:     repaymentsLeft(l.EndDate, now),
		})
	}
	return out, nil
}

// repaymentsLeft counts whole months from now to the loan's end date,
// floored at zero for loans already past their term.
func repaymentsLeft(endDate, now time.Time) int {
	months := (endDate.Year()-now.Year())*12 + int(endDate.Month()) - int(now.Month())
	if months < 0 {
		return 0
	}
	return months
}
