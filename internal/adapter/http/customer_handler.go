package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	customerDomain "credit-approval-service/internal/domain/customer"
	customerUC "credit-approval-service/internal/usecase/customer"
)

type CustomerHandler struct{ uc *customerUC.Usecase }

func NewCustomerHandler(uc *customerUC.Usecase) *CustomerHandler { return &CustomerHandler{uc: uc} }

type registerReq struct {
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	Age           int     `json:"age" validate:"required,gte=18"`
	MonthlyIncome float64 `json:"monthly_income" validate:"required,gt=0,dec2"`
	PhoneNumber   int64   `json:"phone_number" validate:"required,gt=0"`
}

func (h *CustomerHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Register(c.Request().Context(), customerUC.RegisterInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		MonthlyIncome: decimal.NewFromFloat(req.MonthlyIncome),
		PhoneNumber:   req.PhoneNumber,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, customerDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}
