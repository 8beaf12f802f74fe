package adjustment

import "context"

// AdjustmentRepository defines data access for pay adjustments and their
// application records.
type AdjustmentRepository interface {
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]PayAdjustment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayAdjustment, error)
	// ApplicationsForPeriod returns prior applications for the employee in
	// the given period keyed by adjustment ID. Used to keep recomputation
	// idempotent: an already-applied adjustment is re-emitted at its
	// recorded amount, never applied twice.
	ApplicationsForPeriod(ctx context.Context, employeeID, periodID string) (map[string]Application, error)
	// RecordApplication inserts the application and advances the
	// adjustment's TotalApplied/RemainingBalance in one statement pair.
	// Fails with ErrInsufficientBalance if the amount would drive the
	// balance negative, and ErrAlreadyApplied on a duplicate period.
	RecordApplication(ctx context.Context, app Application) (Application, error)
}
