package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/adjustment"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

// ResolvedAdjustment is one adjustment due in the period with its capped
// amount and display tag. AlreadyApplied marks re-emission of a prior
// application on recompute: the line appears at the recorded amount, but
// no new application record is written.
type ResolvedAdjustment struct {
	Adjustment    adjustment.PayAdjustment
	Amount        decimal.Decimal
	Tag           payroll.LineType
	BalanceBefore *decimal.Decimal
	BalanceAfter  *decimal.Decimal
	AlreadyApplied bool
}

// ResolveAdjustments selects the adjustments of one category due for the
// period. Pure over already-fetched candidates; applied holds prior
// application records for this exact period keyed by adjustment ID.
func ResolveAdjustments(
	candidates []adjustment.PayAdjustment,
	applied map[string]adjustment.Application,
	p period.PayrollPeriod,
	category adjustment.Category,
) []ResolvedAdjustment {
	var resolved []ResolvedAdjustment

	for _, a := range candidates {
		if a.Category != category || a.Status != adjustment.StatusActive {
			continue
		}

		if prior, ok := applied[a.ID]; ok {
			resolved = append(resolved, ResolvedAdjustment{
				Adjustment:     a,
				Amount:         prior.Amount,
				Tag:            adjustmentTag(a),
				BalanceBefore:  prior.BalanceBefore,
				BalanceAfter:   prior.BalanceAfter,
				AlreadyApplied: true,
			})
			continue
		}

		if !applicable(a, p) {
			continue
		}

		due := a.Amount
		var before, after *decimal.Decimal
		if a.IsBalanceTracked() {
			remaining := *a.RemainingBalance
			if !remaining.IsPositive() {
				continue
			}
			if due.GreaterThan(remaining) {
				due = remaining
			}
			b := remaining
			af := remaining.Sub(due)
			before, after = &b, &af
		}
		if !due.IsPositive() {
			continue
		}

		resolved = append(resolved, ResolvedAdjustment{
			Adjustment:    a,
			Amount:        due.Round(2),
			Tag:           adjustmentTag(a),
			BalanceBefore: before,
			BalanceAfter:  after,
		})
	}

	return resolved
}

// applicable checks period applicability: one-time adjustments match only
// their target period; recurring ones must overlap the cutoff window and
// be due on their interval.
func applicable(a adjustment.PayAdjustment, p period.PayrollPeriod) bool {
	if a.IsOneTime() {
		return *a.TargetPeriodID == p.ID
	}
	if a.RecurringStart == nil || a.RecurringStart.After(p.CutoffEnd) {
		return false
	}
	if a.RecurringEnd != nil && a.RecurringEnd.Before(p.CutoffStart) {
		return false
	}
	switch a.Interval {
	case adjustment.IntervalMonthly:
		// Once a month: second cutoff on semi-monthly cycles.
		if p.CycleType == period.CycleSemiMonthly {
			return p.IsSecondCutoff()
		}
		return true
	default:
		return true
	}
}

// adjustmentTag maps an adjustment's type metadata into the enumerated
// line-type set. The single lookup here keeps the composers free of
// sub-type branching.
func adjustmentTag(a adjustment.PayAdjustment) payroll.LineType {
	if a.Category == adjustment.CategoryEarning {
		switch {
		case a.Type.IsAllowance:
			return payroll.LineTypeAllowance
		case a.Type.IsBonus:
			return payroll.LineTypeBonus
		default:
			return payroll.LineTypeAdjustment
		}
	}
	if a.Type.IsLoan {
		return payroll.LineTypeLoan
	}
	return payroll.LineTypeAdjustment
}
