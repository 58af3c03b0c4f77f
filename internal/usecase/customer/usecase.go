package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/uow"
)

type Usecase struct {
	repo customer.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r customer.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

var (
	thirtySix = decimal.NewFromInt(36)
	lakh      = decimal.NewFromInt(100_000)
)

// ApprovedLimit is 36x monthly income rounded to the nearest lakh. Fixed at
// registration; never recomputed.
func ApprovedLimit(monthlyIncome decimal.Decimal) decimal.Decimal {
	return monthlyIncome.Mul(thirtySix).Div(lakh).Round(0).Mul(lakh)
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*CustomerDTO, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, errors.New("invalid input: name is required")
	}
	if in.Age < 18 {
		return nil, errors.New("invalid input: age must be at least 18")
	}
	if in.MonthlyIncome.Sign() <= 0 {
		return nil, errors.New("invalid input: monthly income must be positive")
	}

	c := &customer.Customer{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Age:           in.Age,
		PhoneNumber:   in.PhoneNumber,
		MonthlySalary: in.MonthlyIncome,
		ApprovedLimit: ApprovedLimit(in.MonthlyIncome),
		CurrentDebt:   decimal.Zero,
	}

	// id assignment and insert share one tx so concurrent registrations
	// cannot race on max+1
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		id, err := r.Customers.NextID(ctx)
		if err != nil {
			return fmt.Errorf("next customer id: %w", err)
		}
		c.CustomerID = id
		return r.Customers.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, customerID uint64) (*CustomerDTO, error) {
	c, err := u.repo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

func toDTO(c *customer.Customer) *CustomerDTO {
	return &CustomerDTO{
		CustomerID:    c.CustomerID,
		Name:          c.FullName(),
		Age:           c.Age,
		MonthlyIncome: c.MonthlySalary,
		ApprovedLimit: c.ApprovedLimit,
		PhoneNumber:   c.PhoneNumber,
	}
}
