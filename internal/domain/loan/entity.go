package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// EmployeeLoan is a principal amortized across payroll periods.
//
// Invariants: sum of payment amounts equals TotalPaid;
// RemainingBalance = max(0, TotalAmount - TotalPaid). Balances move only
// through recorded payments; a zero balance flips Status to completed.
type EmployeeLoan struct {
	ID               string
	EmployeeID       string
	CompanyID        string
	Name             string
	TotalAmount      decimal.Decimal
	TermMonths       int
	MonthlyDeduction decimal.Decimal
	TotalPaid        decimal.Decimal
	RemainingBalance decimal.Decimal
	StartDate        time.Time
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Deductible reports whether the loan participates in payroll deduction.
func (l EmployeeLoan) Deductible() bool {
	return l.Status == StatusActive && l.RemainingBalance.IsPositive()
}

// Payment is one installment collected through a payroll entry.
type Payment struct {
	ID             string
	LoanID         string
	PayrollEntryID string
	PeriodID       string
	Amount         decimal.Decimal
	BalanceBefore  decimal.Decimal
	BalanceAfter   decimal.Decimal
	PaidAt         time.Time
}
