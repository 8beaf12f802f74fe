package response

import (
	"errors"
	"net/http"

	"github.com/suweldo-hq/payroll-engine-go/internal/domain/adjustment"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/contribution"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoCompensation):
		BadRequest(w, "Employee has no compensation profile", nil)

	// Period domain errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, period.ErrPeriodClosed):
		Conflict(w, "Payroll period is closed")
	case errors.Is(err, period.ErrPeriodAlreadyExists):
		Conflict(w, "Payroll period already exists for this cutoff")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrEntryAlreadyExists):
		Conflict(w, "Payroll entry already computed; use force to recompute")
	case errors.Is(err, payroll.ErrEntryNotRecomputable):
		Conflict(w, "Payroll entry can no longer be recomputed")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Invalid payroll entry status transition")
	case errors.Is(err, payroll.ErrEntryImmutable):
		Conflict(w, "Paid payroll entry cannot be modified")

	// Adjustment and loan domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Pay adjustment not found")
	case errors.Is(err, adjustment.ErrInsufficientBalance):
		Conflict(w, "Application amount exceeds remaining balance")
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Employee loan not found")

	// Contribution domain errors
	case errors.Is(err, contribution.ErrNoTableInEffect):
		BadRequest(w, "No contribution table in effect for the period", nil)
	case errors.Is(err, contribution.ErrNoBracketMatch):
		BadRequest(w, "No bracket matches the given salary", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
