package period

import (
	"time"

	"github.com/shopspring/decimal"
)

type CycleType string

const (
	CycleSemiMonthly     CycleType = "semi_monthly"
	CycleMonthly         CycleType = "monthly"
	CycleSupplemental    CycleType = "supplemental"
	CycleThirteenthMonth CycleType = "thirteenth_month"
	CycleFinalPay        CycleType = "final_pay"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// PayrollPeriod is one cutoff of a payroll cycle. Created administratively
// before computation; the engine only reads it.
//
// Invariants: CutoffStart <= CutoffEnd. For semi-monthly cycles an odd
// PeriodNumber is the first half of the month, an even one the second.
type PayrollPeriod struct {
	ID           string
	CompanyID    string
	CutoffStart  time.Time
	CutoffEnd    time.Time
	PayDate      time.Time
	PeriodNumber int
	CycleType    CycleType
	Status       Status

	// Aggregate totals, recomputed from persisted entries after a batch run.
	TotalEmployees  int
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSecondCutoff reports whether this is the later of a month's two
// semi-monthly cutoffs.
func (p PayrollPeriod) IsSecondCutoff() bool {
	return p.CycleType == CycleSemiMonthly && p.PeriodNumber%2 == 0
}

// StatutoryApplies reports whether statutory contributions are computed at
// all for this cycle. Supplemental and thirteenth-month runs carry no
// statutory schemes; those are settled on the regular cycle.
func (p PayrollPeriod) StatutoryApplies() bool {
	switch p.CycleType {
	case CycleMonthly, CycleSemiMonthly, CycleFinalPay:
		return true
	default:
		return false
	}
}

// LumpSumDeductionsDue encodes the "once per month, not split across
// cutoffs" timing shared by SSS, Pag-IBIG and loan installments: on
// semi-monthly cycles these are taken only on the second cutoff.
func (p PayrollPeriod) LumpSumDeductionsDue() bool {
	if !p.StatutoryApplies() {
		return false
	}
	if p.CycleType == CycleSemiMonthly {
		return p.PeriodNumber%2 == 0
	}
	return true
}
