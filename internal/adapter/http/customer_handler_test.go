package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	customerDomain "credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/uow"
	"credit-approval-service/internal/testutil/customermock"
	"credit-approval-service/internal/testutil/uowmock"
	customerUC "credit-approval-service/internal/usecase/customer"
)

func newCustomerUsecase(repo *customermock.Repo) *customerUC.Usecase {
	tx := &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(uow.Repos{Customers: repo})
		},
	}
	return customerUC.NewUsecase(repo, tx)
}

func TestRegister_Success(t *testing.T) {
	e := newEchoWithValidator()

	repo := &customermock.Repo{
		NextIDFn: func(ctx context.Context) (uint64, error) { return 301, nil },
	}
	h := NewCustomerHandler(newCustomerUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodPost, "/register", mustJSON(map[string]any{
		"first_name":     "Asha",
		"last_name":      "Verma",
		"age":            29,
		"monthly_income": 50000,
		"phone_number":   9876543210,
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	var got customerUC.CustomerDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.CustomerID != 301 || got.Name != "Asha Verma" {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if got.ApprovedLimit.String() != "1800000" {
		t.Fatalf("approved limit = %s, want 1800000", got.ApprovedLimit)
	}
}

func TestRegister_ValidationFailure(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCustomerHandler(newCustomerUsecase(&customermock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/register", mustJSON(map[string]any{
		"first_name":     "Asha",
		"last_name":      "Verma",
		"age":            16, // underage
		"monthly_income": 50000,
		"phone_number":   9876543210,
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(er.Details, "Age", "greater than or equal to 18") {
		t.Fatalf("missing Age detail: %+v", er.Details)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &customermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*customerDomain.Customer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewCustomerHandler(newCustomerUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/customers/404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customer_id")
	c.SetParamValues("404")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
