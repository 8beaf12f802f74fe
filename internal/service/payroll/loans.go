package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

// DueInstallment is one loan's installment for the period. Each loan is
// deducted independently and fully up to its own remaining balance; the
// oldest-first ordering matters only for reporting order.
type DueInstallment struct {
	Loan           loan.EmployeeLoan
	Amount         decimal.Decimal
	BalanceBefore  decimal.Decimal
	BalanceAfter   decimal.Decimal
	AlreadyApplied bool
}

// DueLoanInstallments determines each deductible loan's installment for
// the period. Loans share the statutory lump-sum timing: on semi-monthly
// cycles they are collected only on the second cutoff. paid holds prior
// payments for this exact period keyed by loan ID, so recomputation
// re-emits the recorded installment instead of collecting twice.
func DueLoanInstallments(
	loans []loan.EmployeeLoan,
	paid map[string]loan.Payment,
	p period.PayrollPeriod,
) []DueInstallment {
	if !p.LumpSumDeductionsDue() {
		return nil
	}

	ordered := make([]loan.EmployeeLoan, len(loans))
	copy(ordered, loans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartDate.Before(ordered[j].StartDate)
	})

	var due []DueInstallment
	for _, l := range ordered {
		if prior, ok := paid[l.ID]; ok {
			due = append(due, DueInstallment{
				Loan:           l,
				Amount:         prior.Amount,
				BalanceBefore:  prior.BalanceBefore,
				BalanceAfter:   prior.BalanceAfter,
				AlreadyApplied: true,
			})
			continue
		}
		if !l.Deductible() {
			continue
		}

		// Never over-collect on a loan nearing payoff.
		amount := l.MonthlyDeduction
		if amount.GreaterThan(l.RemainingBalance) {
			amount = l.RemainingBalance
		}
		if !amount.IsPositive() {
			continue
		}

		due = append(due, DueInstallment{
			Loan:          l,
			Amount:        amount.Round(2),
			BalanceBefore: l.RemainingBalance,
			BalanceAfter:  l.RemainingBalance.Sub(amount),
		})
	}

	return due
}
