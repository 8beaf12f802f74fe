package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/adjustment"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
	"github.com/suweldo-hq/payroll-engine-go/internal/handler/http/response"
)

// EmployeeHandler serves the employee-scoped read endpoints: the
// adjustments and loans the engine will deduct from.
type EmployeeHandler interface {
	ListAdjustments(w http.ResponseWriter, r *http.Request)
	ListLoans(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
	loanService       loan.LoanService
}

func NewEmployeeHandler(adjustmentService adjustment.AdjustmentService, loanService loan.LoanService) EmployeeHandler {
	return &employeeHandlerImpl{
		adjustmentService: adjustmentService,
		loanService:       loanService,
	}
}

func (h *employeeHandlerImpl) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.adjustmentService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"), id.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) ListLoans(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.loanService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"), id.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
