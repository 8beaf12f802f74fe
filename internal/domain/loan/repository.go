package loan

import "context"

// LoanRepository defines data access for employee loans and payments.
type LoanRepository interface {
	// ListDeductibleByEmployee returns active loans with a positive
	// balance, oldest start date first (first-in-first-serviced).
	ListDeductibleByEmployee(ctx context.Context, employeeID string) ([]EmployeeLoan, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeLoan, error)
	// PaymentsForPeriod returns prior payments for the employee in the
	// period keyed by loan ID, so recomputation re-emits rather than
	// re-collects.
	PaymentsForPeriod(ctx context.Context, employeeID, periodID string) (map[string]Payment, error)
	// RecordPayment inserts the payment, advances TotalPaid and
	// RemainingBalance, and flips the loan to completed when the balance
	// reaches zero.
	RecordPayment(ctx context.Context, payment Payment) (Payment, error)
}
