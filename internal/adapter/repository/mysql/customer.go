package mysql

import (
	"context"
	"errors"

	customerDomain "credit-approval-service/internal/domain/customer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID uint64) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) GetByIDForUpdate(ctx context.Context, customerID uint64) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ?", customerID).
		First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// NextID reserves the next customer_id. Safe only inside a transaction that
// also inserts the row; concurrent registrations serialize on the insert.
func (r *CustomerRepository) NextID(ctx context.Context) (uint64, error) {
	var next uint64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(customer_id), 0) + 1 FROM customers").
		Scan(&next).Error
	return next, err
}

func (r *CustomerRepository) Upsert(ctx context.Context, c *customerDomain.Customer) (bool, error) {
	var existing customerDomain.Customer
	err := r.db.WithContext(ctx).Where("customer_id = ?", c.CustomerID).First(&existing).Error
	switch {
	case err == nil:
		c.CreatedAt = existing.CreatedAt
		return false, r.db.WithContext(ctx).Save(c).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return true, r.db.WithContext(ctx).Create(c).Error
	default:
		return false, err
	}
}
