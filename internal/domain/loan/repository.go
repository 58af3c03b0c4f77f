package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID uint64) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID uint64) ([]Loan, error)
	// NextID reserves the next loan_id (max + 1); call inside a tx.
	NextID(ctx context.Context) (uint64, error)
	// Upsert inserts or replaces by loan_id; reports whether a row was created.
	Upsert(ctx context.Context, l *Loan) (bool, error)
}
