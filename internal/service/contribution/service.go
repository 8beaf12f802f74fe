package contribution

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/contribution"
)

// ScheduleImpl resolves one statutory scheme's shares by walking the
// bracket table in effect at the given date. It holds no bracket data of
// its own; tables are regulatory inputs maintained through the repository.
type ScheduleImpl struct {
	scheme contribution.SchemeCode
	repo   contribution.ContributionRepository
}

func NewSchedule(scheme contribution.SchemeCode, repo contribution.ContributionRepository) contribution.Schedule {
	return &ScheduleImpl{scheme: scheme, repo: repo}
}

// Lookup implements contribution.Schedule.
func (s *ScheduleImpl) Lookup(ctx context.Context, monthlySalary decimal.Decimal, effectiveDate time.Time) (contribution.Share, error) {
	table, err := s.repo.GetTableInEffect(ctx, s.scheme, effectiveDate)
	if err != nil {
		return contribution.Share{}, fmt.Errorf("%s table lookup: %w", s.scheme, err)
	}

	for _, b := range table.Brackets {
		if !matches(monthlySalary, b.SalaryFrom, b.SalaryTo) {
			continue
		}
		return contribution.Share{
			Employee: b.EmployeeAmount.Add(b.EmployeeRate.Mul(monthlySalary)).Round(2),
			Employer: b.EmployerAmount.Add(b.EmployerRate.Mul(monthlySalary)).Round(2),
			TableID:  table.ID,
		}, nil
	}

	return contribution.Share{}, fmt.Errorf("%s salary %s: %w", s.scheme, monthlySalary, contribution.ErrNoBracketMatch)
}

// TaxTableImpl computes progressive withholding from the tax schedule in
// effect at the given date.
type TaxTableImpl struct {
	repo contribution.ContributionRepository
}

func NewTaxTable(repo contribution.ContributionRepository) contribution.TaxTable {
	return &TaxTableImpl{repo: repo}
}

// Compute implements contribution.TaxTable. The due amount for the bracket
// containing the income is the bracket's base tax plus the marginal rate
// applied to the excess over the bracket floor.
func (t *TaxTableImpl) Compute(ctx context.Context, taxableIncome decimal.Decimal, effectiveDate time.Time) (contribution.TaxDue, error) {
	schedule, err := t.repo.GetTaxScheduleInEffect(ctx, effectiveDate)
	if err != nil {
		return contribution.TaxDue{}, fmt.Errorf("tax schedule lookup: %w", err)
	}

	for _, b := range schedule.Brackets {
		if !matches(taxableIncome, b.IncomeFrom, b.IncomeTo) {
			continue
		}
		excess := taxableIncome.Sub(b.IncomeFrom)
		return contribution.TaxDue{
			Amount:  b.BaseTax.Add(excess.Mul(b.Rate)).Round(2),
			TableID: schedule.ID,
		}, nil
	}

	return contribution.TaxDue{}, fmt.Errorf("taxable income %s: %w", taxableIncome, contribution.ErrNoBracketMatch)
}

// matches checks [from, to] containment; a nil upper bound is the
// open-ended top bracket.
func matches(value, from decimal.Decimal, to *decimal.Decimal) bool {
	if value.LessThan(from) {
		return false
	}
	if to != nil && value.GreaterThan(*to) {
		return false
	}
	return true
}
