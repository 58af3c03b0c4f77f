package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, customerID uint64) (*Customer, error)
	// Same lookup with a row lock; used inside loan-creation transactions.
	GetByIDForUpdate(ctx context.Context, customerID uint64) (*Customer, error)
	Save(ctx context.Context, c *Customer) error
	// NextID reserves the next customer_id (max + 1); call inside a tx.
	NextID(ctx context.Context) (uint64, error)
	// Upsert inserts or replaces by customer_id; reports whether a row was created.
	Upsert(ctx context.Context, c *Customer) (bool, error)
}
