package mysql

import (
	"context"
	"errors"

	loanDomain "credit-approval-service/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_date ASC, loan_id ASC").
		Find(&out)
	return out, res.Error
}

// NextID reserves the next loan_id. Safe only inside a transaction that also
// inserts the row.
func (r *LoanRepository) NextID(ctx context.Context) (uint64, error) {
	var next uint64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(loan_id), 0) + 1 FROM loans").
		Scan(&next).Error
	return next, err
}

func (r *LoanRepository) Upsert(ctx context.Context, l *loanDomain.Loan) (bool, error) {
	var existing loanDomain.Loan
	err := r.db.WithContext(ctx).Where("loan_id = ?", l.LoanID).First(&existing).Error
	switch {
	case err == nil:
		l.CreatedAt = existing.CreatedAt
		return false, r.db.WithContext(ctx).Save(l).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return true, r.db.WithContext(ctx).Create(l).Error
	default:
		return false, err
	}
}
