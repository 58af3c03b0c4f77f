package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"credit-approval-service/internal/credit"
	customerDomain "credit-approval-service/internal/domain/customer"
	loanDomain "credit-approval-service/internal/domain/loan"
	loanUC "credit-approval-service/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanUC.Usecase }

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// shared by check-eligibility and create-loan; both take the same request
type loanReq struct {
	CustomerID   uint64  `json:"customer_id" validate:"required,gt=0"`
	LoanAmount   float64 `json:"loan_amount" validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,dec2"`
	Tenure       int     `json:"tenure" validate:"required,gte=1"`
}

func (r loanReq) toInput() loanUC.EligibilityInput {
	return loanUC.EligibilityInput{
		CustomerID:   r.CustomerID,
		LoanAmount:   decimal.NewFromFloat(r.LoanAmount),
		InterestRate: decimal.NewFromFloat(r.InterestRate),
		TenureMonths: r.Tenure,
	}
}

func (h *LoanHandler) CheckEligibility(c echo.Context) error {
	var req loanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.CheckEligibility(c.Request().Context(), req.toInput())
	if err != nil {
		return h.decisionError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return h.decisionError(c, err)
	}
	// 201 either way; a policy rejection is a decision, not a fault
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ViewLoan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.View(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, loanDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
		}
		if errors.Is(err, customerDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ViewCustomerLoans(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}
	out, err := h.uc.ListByCustomer(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, customerDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) decisionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, customerDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found"})
	case errors.Is(err, credit.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
