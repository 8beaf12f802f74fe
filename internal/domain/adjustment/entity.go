package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryEarning   Category = "earning"
	CategoryDeduction Category = "deduction"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Interval string

const (
	IntervalEveryPeriod Interval = "every_period"
	IntervalMonthly     Interval = "monthly"
)

// TypeMeta is the adjustment type's metadata. Allowances, bonuses and
// loan-type deductions are not separate code paths; they are distinguished
// only by these flags.
type TypeMeta struct {
	Code        string
	Name        string
	IsAllowance bool
	IsBonus     bool
	IsLoan      bool
}

// PayAdjustment is a recurring or one-time earning/deduction assigned to an
// employee. A one-time adjustment targets exactly one period; a recurring
// one applies within [RecurringStart, RecurringEnd] (nil end = open) on its
// configured interval.
//
// When balance-tracked (the TotalAmount trio is set) the invariant is
// RemainingBalance = TotalAmount - TotalApplied, never negative. Balances
// are mutated only through append-only Application records.
type PayAdjustment struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Category   Category
	Type       TypeMeta
	Amount     decimal.Decimal
	Status     Status

	TargetPeriodID *string
	RecurringStart *time.Time
	RecurringEnd   *time.Time
	Interval       Interval

	TotalAmount      *decimal.Decimal
	TotalApplied     *decimal.Decimal
	RemainingBalance *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a PayAdjustment) IsOneTime() bool {
	return a.TargetPeriodID != nil
}

func (a PayAdjustment) IsBalanceTracked() bool {
	return a.TotalAmount != nil && a.RemainingBalance != nil
}

// Application is the append-only record of one adjustment being taken in
// one period. Written only after the payroll entry is durably persisted.
type Application struct {
	ID             string
	AdjustmentID   string
	PayrollEntryID string
	PeriodID       string
	Amount         decimal.Decimal
	BalanceBefore  *decimal.Decimal
	BalanceAfter   *decimal.Decimal
	AppliedAt      time.Time
	AppliedBy      string
}
