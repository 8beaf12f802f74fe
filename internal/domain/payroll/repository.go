package payroll

import (
	"context"
	"time"

	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

// PayrollRepository defines data access methods for payroll entries.
// All methods include companyID to prevent cross-company data access.
type PayrollRepository interface {
	GetEntryByID(ctx context.Context, id string, companyID string) (Entry, error)
	GetEntryByEmployeePeriod(ctx context.Context, employeeID, periodID string) (Entry, error)
	ListEntriesByPeriod(ctx context.Context, periodID string, companyID string) ([]Entry, error)
	ListLineItems(ctx context.Context, entryID string) ([]LineItem, error)

	// ReplaceEntry is the compute-then-swap: inside one transaction it
	// discards the entry's previous line items, upserts the entry row and
	// inserts the new line items. A failure leaves the previously
	// persisted entry untouched.
	ReplaceEntry(ctx context.Context, entry Entry, lines []LineItem) (Entry, error)

	// UpdateEntryStatus applies a lifecycle step, stamping the actor and
	// time. Rejects non-linear transitions with ErrInvalidTransition.
	UpdateEntryStatus(ctx context.Context, id string, companyID string, next EntryStatus, actorID string, at time.Time) (Entry, error)

	// SummarizePeriod re-aggregates period totals from persisted entries.
	SummarizePeriod(ctx context.Context, periodID string, companyID string) (period.PeriodTotals, error)
}
