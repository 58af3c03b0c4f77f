package loanmock

import (
	"context"

	domain "credit-approval-service/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn      func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	ListByCustomerIDFn func(ctx context.Context, customerID uint64) ([]domain.Loan, error)
	NextIDFn           func(ctx context.Context) (uint64, error)
	UpsertFn           func(ctx context.Context, l *domain.Loan) (bool, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID uint64) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) NextID(ctx context.Context) (uint64, error) {
	if m.NextIDFn != nil {
		return m.NextIDFn(ctx)
	}
	return 1, nil
}

func (m *Repo) Upsert(ctx context.Context, l *domain.Loan) (bool, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, l)
	}
	return true, nil
}
