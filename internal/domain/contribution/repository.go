package contribution

import (
	"context"
	"time"
)

// ContributionRepository reads the externally supplied bracket tables.
type ContributionRepository interface {
	// GetTableInEffect returns the latest table for the scheme whose
	// EffectiveFrom is on or before asOf.
	GetTableInEffect(ctx context.Context, scheme SchemeCode, asOf time.Time) (ContributionTable, error)
	GetTaxScheduleInEffect(ctx context.Context, asOf time.Time) (TaxSchedule, error)
}
