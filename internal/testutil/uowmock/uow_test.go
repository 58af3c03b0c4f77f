package uowmock

import (
	"context"
	"testing"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/uow"
)

func TestUoW_DefaultsError(t *testing.T) {
	m := New()
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil }); err == nil {
		t.Fatal("default WithinTx should error")
	}
	err := m.WithinCustomerTx(context.Background(), 1, func(uow.Repos, *customer.Customer) error { return nil })
	if err == nil {
		t.Fatal("default WithinCustomerTx should error")
	}
}

func TestPassthrough_InvokesCallback(t *testing.T) {
	cust := &customer.Customer{CustomerID: 3}
	m := Passthrough(uow.Repos{}, func(ctx context.Context, id uint64) (*customer.Customer, error) {
		return cust, nil
	})

	called := false
	err := m.WithinCustomerTx(context.Background(), 3, func(r uow.Repos, c *customer.Customer) error {
		called = true
		if c.CustomerID != 3 {
			t.Fatalf("customer id = %d", c.CustomerID)
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("callback not invoked: %v", err)
	}
}
