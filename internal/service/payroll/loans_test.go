package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

func activeLoan(id, start, monthly, remaining string) loan.EmployeeLoan {
	return loan.EmployeeLoan{
		ID:               id,
		Name:             "Salary loan",
		MonthlyDeduction: d(monthly),
		RemainingBalance: d(remaining),
		StartDate:        mustDate(start),
		Status:           loan.StatusActive,
	}
}

func TestDueLoanInstallmentsTimingGate(t *testing.T) {
	loans := []loan.EmployeeLoan{activeLoan("l1", "2025-06-01", "2000", "10000")}

	// First semi-monthly cutoff: loans wait for the second.
	assert.Nil(t, DueLoanInstallments(loans, nil, semiMonthlyPeriod(1)))

	// Supplemental runs never collect loans.
	supplemental := semiMonthlyPeriod(2)
	supplemental.CycleType = period.CycleSupplemental
	assert.Nil(t, DueLoanInstallments(loans, nil, supplemental))

	// Second cutoff collects.
	due := DueLoanInstallments(loans, nil, semiMonthlyPeriod(2))
	require.Len(t, due, 1)
	assert.True(t, due[0].Amount.Equal(d("2000")))
	assert.True(t, due[0].BalanceAfter.Equal(d("8000")))
}

func TestDueLoanInstallmentsMonthlyCycleCollectsEveryPeriod(t *testing.T) {
	loans := []loan.EmployeeLoan{activeLoan("l1", "2025-06-01", "2000", "10000")}
	p := period.PayrollPeriod{PeriodNumber: 1, CycleType: period.CycleMonthly}

	due := DueLoanInstallments(loans, nil, p)
	assert.Len(t, due, 1)
}

func TestDueLoanInstallmentsCapsAtRemainingBalance(t *testing.T) {
	loans := []loan.EmployeeLoan{activeLoan("l1", "2025-06-01", "2000", "1500")}

	due := DueLoanInstallments(loans, nil, semiMonthlyPeriod(2))

	require.Len(t, due, 1)
	assert.True(t, due[0].Amount.Equal(d("1500")), "final installment caps at balance, got %s", due[0].Amount)
	assert.True(t, due[0].BalanceAfter.IsZero())
}

func TestDueLoanInstallmentsEachLoanIndependent(t *testing.T) {
	loans := []loan.EmployeeLoan{
		activeLoan("newer", "2026-01-01", "1000", "5000"),
		activeLoan("older", "2025-03-01", "2000", "400"),
	}

	due := DueLoanInstallments(loans, nil, semiMonthlyPeriod(2))

	require.Len(t, due, 2)
	// Oldest start date reports first; both deduct fully up to their balance.
	assert.Equal(t, "older", due[0].Loan.ID)
	assert.True(t, due[0].Amount.Equal(d("400")))
	assert.Equal(t, "newer", due[1].Loan.ID)
	assert.True(t, due[1].Amount.Equal(d("1000")))
}

func TestDueLoanInstallmentsSkipsNonDeductible(t *testing.T) {
	held := activeLoan("l1", "2025-06-01", "2000", "10000")
	held.Status = loan.StatusOnHold
	paidOff := activeLoan("l2", "2025-06-01", "2000", "0")

	due := DueLoanInstallments([]loan.EmployeeLoan{held, paidOff}, nil, semiMonthlyPeriod(2))
	assert.Empty(t, due)
}

func TestDueLoanInstallmentsReEmitsPriorPayment(t *testing.T) {
	l := activeLoan("l1", "2025-06-01", "2000", "8000")
	prior := map[string]loan.Payment{
		"l1": {LoanID: "l1", Amount: d("2000"), BalanceBefore: d("10000"), BalanceAfter: d("8000")},
	}

	due := DueLoanInstallments([]loan.EmployeeLoan{l}, prior, semiMonthlyPeriod(2))

	require.Len(t, due, 1)
	assert.True(t, due[0].AlreadyApplied)
	assert.True(t, due[0].Amount.Equal(d("2000")))
	// Balances reflect the recorded payment, not the current loan state.
	assert.True(t, due[0].BalanceBefore.Equal(d("10000")))
}
