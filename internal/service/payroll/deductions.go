package payroll

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/contribution"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

// DeductionsComposer combines statutory contributions, withholding tax,
// loan installments and deduction-type adjustments. The bracket services
// are injected collaborators: a scheme whose lookup fails contributes zero
// and is logged for operator follow-up; it never blocks the other
// components.
type DeductionsComposer struct {
	SSS        contribution.Schedule
	PhilHealth contribution.Schedule
	PagIbig    contribution.Schedule
	Tax        contribution.TaxTable
}

type DeductionsResult struct {
	SSS            contribution.Share
	PhilHealth     contribution.Share
	PagIbig        contribution.Share
	WithholdingTax decimal.Decimal
	LoanTotal      decimal.Decimal
	OtherTotal     decimal.Decimal

	// TotalEmployee is subtracted from net pay. TotalEmployer is tracked
	// separately for remittance reporting and never touches net pay.
	TotalEmployee decimal.Decimal
	TotalEmployer decimal.Decimal

	Lines []payroll.LineItem
}

// Compose computes the period's deductions against an already-composed
// gross pay.
//
// Timing rules differ by scheme and must not be confused: SSS and
// Pag-IBIG are collected once a month (second cutoff only on semi-monthly
// cycles), while PhilHealth is collected every cutoff with the monthly
// share split evenly across the month's two cutoffs.
func (c *DeductionsComposer) Compose(
	ctx context.Context,
	comp *employee.CompensationProfile,
	p period.PayrollPeriod,
	gross decimal.Decimal,
	adjustments []ResolvedAdjustment,
	installments []DueInstallment,
) DeductionsResult {
	res := DeductionsResult{
		WithholdingTax: decimal.Zero,
		LoanTotal:      decimal.Zero,
		OtherTotal:     decimal.Zero,
	}

	monthly := monthlySalary(comp, p, gross)

	addLine := func(t payroll.LineType, code, desc string, amount decimal.Decimal, employerShare bool) {
		res.Lines = append(res.Lines, payroll.LineItem{
			Kind:            payroll.LineKindDeduction,
			Type:            t,
			Code:            code,
			Description:     desc,
			Quantity:        decimal.NewFromInt(1),
			Rate:            amount,
			Multiplier:      decimal.NewFromInt(1),
			Amount:          amount,
			IsEmployerShare: employerShare,
			Position:        len(res.Lines),
		})
	}

	if p.LumpSumDeductionsDue() {
		res.SSS = c.lookup(ctx, c.SSS, contribution.SchemeSSS, monthly, p.CutoffEnd)
	}
	if p.StatutoryApplies() {
		share := c.lookup(ctx, c.PhilHealth, contribution.SchemePhilHealth, monthly, p.CutoffEnd)
		if p.CycleType == period.CycleSemiMonthly {
			share.Employee = share.Employee.Div(two).Round(2)
			share.Employer = share.Employer.Div(two).Round(2)
		}
		res.PhilHealth = share
	}
	if p.LumpSumDeductionsDue() {
		res.PagIbig = c.lookup(ctx, c.PagIbig, contribution.SchemePagIbig, monthly, p.CutoffEnd)
	}

	if res.SSS.Employee.IsPositive() {
		addLine(payroll.LineTypeSSS, "SSS-EE", "SSS contribution", res.SSS.Employee, false)
	}
	if res.SSS.Employer.IsPositive() {
		addLine(payroll.LineTypeSSS, "SSS-ER", "SSS contribution (employer)", res.SSS.Employer, true)
	}
	if res.PhilHealth.Employee.IsPositive() {
		addLine(payroll.LineTypePhilHealth, "PH-EE", "PhilHealth contribution", res.PhilHealth.Employee, false)
	}
	if res.PhilHealth.Employer.IsPositive() {
		addLine(payroll.LineTypePhilHealth, "PH-ER", "PhilHealth contribution (employer)", res.PhilHealth.Employer, true)
	}
	if res.PagIbig.Employee.IsPositive() {
		addLine(payroll.LineTypePagIbig, "HDMF-EE", "Pag-IBIG contribution", res.PagIbig.Employee, false)
	}
	if res.PagIbig.Employer.IsPositive() {
		addLine(payroll.LineTypePagIbig, "HDMF-ER", "Pag-IBIG contribution (employer)", res.PagIbig.Employer, true)
	}

	// Pre-tax statutory deductions reduce the tax base.
	taxable := gross.Sub(res.SSS.Employee).Sub(res.PhilHealth.Employee).Sub(res.PagIbig.Employee)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	if c.Tax != nil && p.StatutoryApplies() {
		due, err := c.Tax.Compute(ctx, taxable, p.CutoffEnd)
		if err != nil {
			slog.WarnContext(ctx, "withholding tax lookup failed, deducting zero",
				"period_id", p.ID, "error", err)
		} else if due.Amount.IsPositive() {
			res.WithholdingTax = due.Amount.Round(2)
			addLine(payroll.LineTypeWithholdingTax, "WTAX", "Withholding tax", res.WithholdingTax, false)
		}
	}

	for _, inst := range installments {
		res.LoanTotal = res.LoanTotal.Add(inst.Amount)
		addLine(payroll.LineTypeLoan, "LOAN", inst.Loan.Name, inst.Amount, false)
	}

	for _, adj := range adjustments {
		res.OtherTotal = res.OtherTotal.Add(adj.Amount)
		addLine(adj.Tag, adj.Adjustment.Type.Code, adj.Adjustment.Type.Name, adj.Amount, false)
	}

	res.TotalEmployee = res.SSS.Employee.
		Add(res.PhilHealth.Employee).
		Add(res.PagIbig.Employee).
		Add(res.WithholdingTax).
		Add(res.LoanTotal).
		Add(res.OtherTotal)
	res.TotalEmployer = res.SSS.Employer.
		Add(res.PhilHealth.Employer).
		Add(res.PagIbig.Employer)

	return res
}

// lookup resolves one scheme's monthly share, degrading to zero on error.
// A missing or stale bracket table for one scheme must not block payroll
// for every other component.
func (c *DeductionsComposer) lookup(
	ctx context.Context,
	schedule contribution.Schedule,
	scheme contribution.SchemeCode,
	monthlySalary decimal.Decimal,
	effectiveDate time.Time,
) contribution.Share {
	if schedule == nil {
		return contribution.Share{Employee: decimal.Zero, Employer: decimal.Zero}
	}
	share, err := schedule.Lookup(ctx, monthlySalary, effectiveDate)
	if err != nil {
		slog.WarnContext(ctx, "contribution lookup failed, deducting zero",
			"scheme", scheme, "monthly_salary", monthlySalary.String(), "error", err)
		return contribution.Share{Employee: decimal.Zero, Employer: decimal.Zero}
	}
	share.Employee = share.Employee.Round(2)
	share.Employer = share.Employer.Round(2)
	return share
}

// monthlySalary derives the monthly-equivalent figure for bracket lookups
// from the compensation profile when present, else from gross pay scaled
// by the cycle type.
func monthlySalary(comp *employee.CompensationProfile, p period.PayrollPeriod, gross decimal.Decimal) decimal.Decimal {
	if comp != nil {
		return MonthlyEquivalent(comp.BasicPay, comp.PayType)
	}
	if p.CycleType == period.CycleSemiMonthly {
		return gross.Mul(two)
	}
	return gross
}
