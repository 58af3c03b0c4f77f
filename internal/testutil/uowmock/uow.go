package uowmock

import (
	"context"
	"errors"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinCustomerTxFn func(ctx context.Context, customerID uint64, fn func(r uow.Repos, c *customer.Customer) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that simply invokes the callback with the given
// repos and no real transaction, which is what most usecase tests want.
func Passthrough(r uow.Repos, byID func(ctx context.Context, customerID uint64) (*customer.Customer, error)) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinCustomerTxFn: func(ctx context.Context, customerID uint64, fn func(uow.Repos, *customer.Customer) error) error {
			c, err := byID(ctx, customerID)
			if err != nil {
				return err
			}
			return fn(r, c)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinCustomerTx(ctx context.Context, customerID uint64, fn func(r uow.Repos, c *customer.Customer) error) error {
	if m.WithinCustomerTxFn != nil {
		return m.WithinCustomerTxFn(ctx, customerID, fn)
	}
	return errUnimplemented
}
