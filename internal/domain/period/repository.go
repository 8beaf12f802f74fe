package period

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PeriodTotals struct {
	TotalEmployees  int
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
}

// PeriodRepository defines data access methods for payroll periods.
type PeriodRepository interface {
	Create(ctx context.Context, p PayrollPeriod) (PayrollPeriod, error)
	GetByID(ctx context.Context, id string, companyID string) (PayrollPeriod, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]PayrollPeriod, error)
	// UpdateTotals writes the re-aggregated period totals after a batch run.
	UpdateTotals(ctx context.Context, id string, companyID string, totals PeriodTotals) error
	CloseEnded(ctx context.Context, asOf time.Time) (int, error)
}
