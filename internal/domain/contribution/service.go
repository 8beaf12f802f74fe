package contribution

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Schedule resolves a statutory scheme's monthly employee/employer shares
// for a monthly-equivalent salary. Injected into the deductions composer;
// a lookup error degrades that scheme to zero, it never aborts the run.
type Schedule interface {
	Lookup(ctx context.Context, monthlySalary decimal.Decimal, effectiveDate time.Time) (Share, error)
}

// TaxTable resolves progressive withholding tax due for a taxable income.
type TaxTable interface {
	Compute(ctx context.Context, taxableIncome decimal.Decimal, effectiveDate time.Time) (TaxDue, error)
}
