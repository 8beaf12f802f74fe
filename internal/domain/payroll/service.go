package payroll

import "context"

// PayrollService is the orchestrator surface exposed to handlers.
// actorID is threaded explicitly for audit attribution; no implicit
// authenticated-user lookup happens below the HTTP layer.
type PayrollService interface {
	// ComputeEmployee computes and persists one employee's entry for a
	// period. force permits recomputation of an existing entry while its
	// status allows it.
	ComputeEmployee(ctx context.Context, periodID, employeeID, companyID, actorID string, force bool) (EntryResponse, error)

	// ComputePeriod runs the batch: every requested (or all active)
	// employee, bounded fan-out, skip-existing-unless-force, then the
	// period totals re-aggregation pass.
	ComputePeriod(ctx context.Context, req ComputePeriodRequest, companyID, actorID string) (BatchResult, error)

	// Preview runs the full pipeline with zero persistence side effects.
	Preview(ctx context.Context, periodID, employeeID, companyID string) (PreviewResponse, error)

	GetEntry(ctx context.Context, id string, companyID string) (EntryResponse, error)
	ListEntries(ctx context.Context, periodID string, companyID string) ([]EntryResponse, error)

	// Transition applies one lifecycle step (computed -> reviewed ->
	// approved -> paid).
	Transition(ctx context.Context, entryID string, companyID string, next EntryStatus, actorID string) (EntryResponse, error)
}
