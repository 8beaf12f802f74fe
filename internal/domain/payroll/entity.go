package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/adjustment"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
)

// EntryStatus is the linear lifecycle of a payroll entry. No skipping:
// draft -> computed -> reviewed -> approved -> paid.
type EntryStatus string

const (
	EntryStatusDraft    EntryStatus = "draft"
	EntryStatusComputed EntryStatus = "computed"
	EntryStatusReviewed EntryStatus = "reviewed"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusPaid     EntryStatus = "paid"
)

// CanRecompute reports whether the entry may be recomputed. Approved and
// paid entries are immutable; a recompute attempt is rejected outright.
func (s EntryStatus) CanRecompute() bool {
	switch s {
	case EntryStatusDraft, EntryStatusComputed, EntryStatusReviewed:
		return true
	default:
		return false
	}
}

var statusOrder = map[EntryStatus]int{
	EntryStatusDraft:    0,
	EntryStatusComputed: 1,
	EntryStatusReviewed: 2,
	EntryStatusApproved: 3,
	EntryStatusPaid:     4,
}

// CanTransitionTo allows only the single next step in the lifecycle.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	from, ok := statusOrder[s]
	if !ok {
		return false
	}
	to, ok := statusOrder[next]
	if !ok {
		return false
	}
	return to == from+1
}

type LineKind string

const (
	LineKindEarning   LineKind = "earning"
	LineKindDeduction LineKind = "deduction"
)

// LineType is the small enumerated set of display tags every line maps
// into. Adjustment sub-categories collapse into allowance/bonus/adjustment
// (earnings) or loan/adjustment (deductions) via the type's metadata.
type LineType string

const (
	LineTypeBasic          LineType = "basic"
	LineTypeAbsence        LineType = "absence"
	LineTypeTardiness      LineType = "tardiness"
	LineTypeOvertime       LineType = "overtime"
	LineTypeNightDiff      LineType = "night_diff"
	LineTypeHoliday        LineType = "holiday"
	LineTypeAllowance      LineType = "allowance"
	LineTypeBonus          LineType = "bonus"
	LineTypeAdjustment     LineType = "adjustment"
	LineTypeSSS            LineType = "sss"
	LineTypePhilHealth     LineType = "philhealth"
	LineTypePagIbig        LineType = "pagibig"
	LineTypeWithholdingTax LineType = "withholding_tax"
	LineTypeLoan           LineType = "loan"
)

// LineItem is one itemized contribution to an entry's totals, kept for
// audit and payslip display. Line items are replaced wholesale on every
// computation run; they are never appended to.
type LineItem struct {
	ID              string
	EntryID         string
	Kind            LineKind
	Type            LineType
	Code            string
	Description     string
	Quantity        decimal.Decimal
	Rate            decimal.Decimal
	Multiplier      decimal.Decimal
	Amount          decimal.Decimal // signed; audit deductions from basic are negative earnings
	IsTaxable       bool
	IsEmployerShare bool
	Position        int
	CreatedAt       time.Time
}

// Entry is one employee's finalized result for one period.
type Entry struct {
	ID         string
	CompanyID  string
	EmployeeID string
	PeriodID   string

	// Attendance snapshot
	DaysWorked       int
	AbsentDays       int
	LateMinutes      int
	UndertimeMinutes int
	OvertimeMinutes  int
	NightDiffMinutes int

	// Earnings
	BasicPay     decimal.Decimal
	OvertimePay  decimal.Decimal
	NightDiffPay decimal.Decimal
	HolidayPay   decimal.Decimal
	Allowances   decimal.Decimal
	Bonuses      decimal.Decimal
	GrossPay     decimal.Decimal

	// Deductions. Employer shares are never subtracted from net pay; they
	// are tracked for statutory remittance reporting.
	SSSEmployee        decimal.Decimal
	SSSEmployer        decimal.Decimal
	PhilHealthEmployee decimal.Decimal
	PhilHealthEmployer decimal.Decimal
	PagIbigEmployee    decimal.Decimal
	PagIbigEmployer    decimal.Decimal
	WithholdingTax     decimal.Decimal
	LoanDeductions     decimal.Decimal
	OtherDeductions    decimal.Decimal
	TotalDeductions    decimal.Decimal
	TotalEmployerShare decimal.Decimal

	// Net pay is not clamped: deductions may legitimately exceed gross.
	NetPay decimal.Decimal

	Status     EntryStatus
	ComputedAt *time.Time
	ComputedBy *string
	ReviewedAt *time.Time
	ReviewedBy *string
	ApprovedAt *time.Time
	ApprovedBy *string
	PaidAt     *time.Time
	PaidBy     *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// ComputeResult is the pure-compute output for one employee/period. In a
// run it is persisted (entry swap first, then the pending side effects);
// in a preview it is returned as-is with nothing written.
type ComputeResult struct {
	Entry      Entry
	Earnings   []LineItem
	Deductions []LineItem

	// Side effects deferred to the post-persistence phase. Empty entries
	// already applied in a prior run re-emit their line without a pending
	// record.
	PendingApplications []adjustment.Application
	PendingPayments     []loan.Payment

	// Skipped is set when the employee has no compensation profile: the
	// result is all-zero with no line items and nothing is persisted.
	Skipped bool
}
