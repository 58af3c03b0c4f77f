package customermock

import (
	"context"

	domain "credit-approval-service/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies customer.Repository.
// Fill in the function fields a test needs; unfilled ones return zero values
// or context.Canceled for lookups.
type Repo struct {
	CreateFn           func(ctx context.Context, c *domain.Customer) error
	GetByIDFn          func(ctx context.Context, customerID uint64) (*domain.Customer, error)
	GetByIDForUpdateFn func(ctx context.Context, customerID uint64) (*domain.Customer, error)
	SaveFn             func(ctx context.Context, c *domain.Customer) error
	NextIDFn           func(ctx context.Context) (uint64, error)
	UpsertFn           func(ctx context.Context, c *domain.Customer) (bool, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, customerID uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, customerID uint64) (*domain.Customer, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) NextID(ctx context.Context) (uint64, error) {
	if m.NextIDFn != nil {
		return m.NextIDFn(ctx)
	}
	return 1, nil
}

func (m *Repo) Upsert(ctx context.Context, c *domain.Customer) (bool, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, c)
	}
	return true, nil
}
