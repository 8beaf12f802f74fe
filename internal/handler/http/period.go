package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
	"github.com/suweldo-hq/payroll-engine-go/internal/handler/http/response"
)

type PeriodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type periodHandlerImpl struct {
	periodService period.PeriodService
}

func NewPeriodHandler(periodService period.PeriodService) PeriodHandler {
	return &periodHandlerImpl{periodService: periodService}
}

func (h *periodHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req period.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.periodService.Create(r.Context(), req, id.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created", result)
}

func (h *periodHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.periodService.GetByID(r.Context(), chi.URLParam(r, "periodID"), id.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *periodHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.periodService.List(r.Context(), id.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
