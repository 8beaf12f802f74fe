package period

import (
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	CutoffStart  string `json:"cutoff_start"`
	CutoffEnd    string `json:"cutoff_end"`
	PayDate      string `json:"pay_date"`
	PeriodNumber int    `json:"period_number"`
	CycleType    string `json:"cycle_type"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.CutoffStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "cutoff_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.CutoffEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "cutoff_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "cutoff_end", Message: "must not be before cutoff_start"})
	}
	if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.PeriodNumber < 1 {
		errs = append(errs, validator.ValidationError{Field: "period_number", Message: "must be at least 1"})
	}
	switch CycleType(r.CycleType) {
	case CycleSemiMonthly, CycleMonthly, CycleSupplemental, CycleThirteenthMonth, CycleFinalPay:
	default:
		errs = append(errs, validator.ValidationError{Field: "cycle_type", Message: "must be a known cycle type"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	CutoffStart     string `json:"cutoff_start"`
	CutoffEnd       string `json:"cutoff_end"`
	PayDate         string `json:"pay_date"`
	PeriodNumber    int    `json:"period_number"`
	CycleType       string `json:"cycle_type"`
	Status          string `json:"status"`
	TotalEmployees  int    `json:"total_employees"`
	TotalGross      string `json:"total_gross"`
	TotalDeductions string `json:"total_deductions"`
	TotalNet        string `json:"total_net"`
}
