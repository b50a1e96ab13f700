package http

import (
	"errors"
	"net/http"
	"strconv"

	custDomain "creditnest/internal/domain/customer"
	loanDomain "creditnest/internal/domain/loan"
	loanuc "creditnest/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(u *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: u} }

type loanRequestReq struct {
	CustomerID   uint64  `json:"customer_id"   validate:"required,gt=0"`
	LoanAmount   float64 `json:"loan_amount"   validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,dec2"`
	Tenure       int     `json:"tenure"        validate:"required,gt=0,lte=480"`
}

func parseIDParam(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// bindLoanRequest binds and validates the shared request shape. When it
// returns ok=false the response has already been written.
func (h *LoanHandler) bindLoanRequest(c echo.Context, req *loanRequestReq) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func (h *LoanHandler) CheckEligibility(c echo.Context) error {
	var req loanRequestReq
	if ok, err := h.bindLoanRequest(c, &req); !ok {
		return err
	}
	dto, err := h.uc.CheckEligibility(c.Request().Context(), loanuc.LoanRequestInput(req))
	if err != nil {
		return mapLoanErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loanRequestReq
	if ok, err := h.bindLoanRequest(c, &req); !ok {
		return err
	}
	dto, err := h.uc.CreateLoan(c.Request().Context(), loanuc.LoanRequestInput(req))
	if err != nil {
		return mapLoanErr(c, err)
	}
	if !dto.LoanApproved {
		return c.JSON(http.StatusOK, dto)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, err := parseIDParam(c, "loan_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return mapLoanErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListCustomerLoans(c echo.Context) error {
	id, err := parseIDParam(c, "customer_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}
	dtos, err := h.uc.ListActiveLoans(c.Request().Context(), id)
	if err != nil {
		return mapLoanErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func mapLoanErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, custDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found"})
	case errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
