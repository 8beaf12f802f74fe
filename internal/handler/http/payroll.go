package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ComputePeriod(w http.ResponseWriter, r *http.Request)
	ComputeEmployee(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== COMPUTATION ==========

func (h *payrollHandlerImpl) ComputePeriod(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req payroll.ComputePeriodRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.PeriodID = chi.URLParam(r, "periodID")

	result, err := h.payrollService.ComputePeriod(r.Context(), req, id.CompanyID, id.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll batch completed", result)
}

func (h *payrollHandlerImpl) ComputeEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req struct {
		Force bool `json:"force"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	result, err := h.payrollService.ComputeEmployee(
		r.Context(),
		chi.URLParam(r, "periodID"),
		chi.URLParam(r, "employeeID"),
		id.CompanyID, id.UserID, req.Force,
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.payrollService.Preview(
		r.Context(),
		chi.URLParam(r, "periodID"),
		chi.URLParam(r, "employeeID"),
		id.CompanyID,
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== ENTRIES ==========

func (h *payrollHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.payrollService.GetEntry(r.Context(), chi.URLParam(r, "entryID"), id.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.payrollService.ListEntries(r.Context(), chi.URLParam(r, "periodID"), id.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, payroll.EntryStatusReviewed)
}

func (h *payrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, payroll.EntryStatusApproved)
}

func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, payroll.EntryStatusPaid)
}

func (h *payrollHandlerImpl) transition(w http.ResponseWriter, r *http.Request, next payroll.EntryStatus) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.payrollService.Transition(r.Context(), chi.URLParam(r, "entryID"), id.CompanyID, next, id.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
