package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/validator"
)

// ========== COMPUTE DTOs ==========

type ComputePeriodRequest struct {
	PeriodID    string   `json:"-"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
	Force       bool     `json:"force"`
}

func (r *ComputePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{Field: "period_id", Message: "is required"})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BatchResult summarizes a period run. Individual employee failures are
// logged, not surfaced; the operator sees counts.
type BatchResult struct {
	Computed int `json:"computed"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// ========== ENTRY DTOs ==========

type LineItemResponse struct {
	ID              string          `json:"id,omitempty"`
	Kind            string          `json:"kind"`
	Type            string          `json:"type"`
	Code            string          `json:"code"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	Multiplier      decimal.Decimal `json:"multiplier"`
	Amount          decimal.Decimal `json:"amount"`
	IsTaxable       bool            `json:"is_taxable"`
	IsEmployerShare bool            `json:"is_employer_share"`
}

type EntryResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	PeriodID     string  `json:"period_id"`
	Status       string  `json:"status"`
	ComputedAt   *string `json:"computed_at,omitempty"`
	ComputedBy   *string `json:"computed_by,omitempty"`

	DaysWorked       int `json:"days_worked"`
	AbsentDays       int `json:"absent_days"`
	LateMinutes      int `json:"late_minutes"`
	UndertimeMinutes int `json:"undertime_minutes"`
	OvertimeMinutes  int `json:"overtime_minutes"`
	NightDiffMinutes int `json:"night_diff_minutes"`

	BasicPay     decimal.Decimal `json:"basic_pay"`
	OvertimePay  decimal.Decimal `json:"overtime_pay"`
	NightDiffPay decimal.Decimal `json:"night_diff_pay"`
	HolidayPay   decimal.Decimal `json:"holiday_pay"`
	Allowances   decimal.Decimal `json:"allowances"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	GrossPay     decimal.Decimal `json:"gross_pay"`

	SSSEmployee        decimal.Decimal `json:"sss_employee"`
	SSSEmployer        decimal.Decimal `json:"sss_employer"`
	PhilHealthEmployee decimal.Decimal `json:"philhealth_employee"`
	PhilHealthEmployer decimal.Decimal `json:"philhealth_employer"`
	PagIbigEmployee    decimal.Decimal `json:"pagibig_employee"`
	PagIbigEmployer    decimal.Decimal `json:"pagibig_employer"`
	WithholdingTax     decimal.Decimal `json:"withholding_tax"`
	LoanDeductions     decimal.Decimal `json:"loan_deductions"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	TotalEmployerShare decimal.Decimal `json:"total_employer_share"`
	NetPay             decimal.Decimal `json:"net_pay"`

	Earnings   []LineItemResponse `json:"earnings,omitempty"`
	Deductions []LineItemResponse `json:"deductions,omitempty"`
}

// PreviewResponse is a full computation result with no persistence side
// effects: no entry upserted, no application or payment records written.
type PreviewResponse struct {
	EmployeeID string             `json:"employee_id"`
	PeriodID   string             `json:"period_id"`
	Skipped    bool               `json:"skipped"`
	GrossPay   decimal.Decimal    `json:"gross_pay"`
	Deductions decimal.Decimal    `json:"total_deductions"`
	NetPay     decimal.Decimal    `json:"net_pay"`
	Entry      EntryResponse      `json:"entry"`
	Earnings   []LineItemResponse `json:"earnings"`
	Items      []LineItemResponse `json:"deduction_items"`
}
