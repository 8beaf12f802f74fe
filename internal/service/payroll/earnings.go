package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/attendance"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

// EarningsResult carries the gross-pay figure and its itemized lines.
// Each component is rounded to 2 decimals before summation (round-then-sum,
// matching regulatory audit expectations).
type EarningsResult struct {
	BasicPay     decimal.Decimal
	OvertimePay  decimal.Decimal
	NightDiffPay decimal.Decimal
	HolidayPay   decimal.Decimal
	Allowances   decimal.Decimal
	Bonuses      decimal.Decimal
	GrossPay     decimal.Decimal
	Lines        []payroll.LineItem
}

// holidayLineOrder fixes the emission order of per-holiday-type lines.
var holidayLineOrder = []attendance.HolidayType{
	attendance.HolidaySpecial,
	attendance.HolidayRegular,
	attendance.HolidayDouble,
}

// ComposeEarnings combines basic pay, overtime, night differential,
// holiday pay and earning-type adjustments into gross pay.
//
// An employee with no compensation profile yields an all-zero result with
// no line items: a payroll run skips an under-provisioned employee, it
// never aborts the batch over one.
func ComposeEarnings(
	comp *employee.CompensationProfile,
	p period.PayrollPeriod,
	att AttendanceSummary,
	adjustments []ResolvedAdjustment,
) EarningsResult {
	if comp == nil {
		return EarningsResult{
			BasicPay: decimal.Zero, OvertimePay: decimal.Zero, NightDiffPay: decimal.Zero,
			HolidayPay: decimal.Zero, Allowances: decimal.Zero, Bonuses: decimal.Zero,
			GrossPay: decimal.Zero,
		}
	}

	dailyRate := DailyRate(comp.BasicPay, comp.PayType)
	hourlyRate := HourlyRate(dailyRate)
	minuteRate := MinuteRate(dailyRate)

	var lines []payroll.LineItem
	addLine := func(t payroll.LineType, code, desc string, qty, rate, mult, amount decimal.Decimal) {
		lines = append(lines, payroll.LineItem{
			Kind:        payroll.LineKindEarning,
			Type:        t,
			Code:        code,
			Description: desc,
			Quantity:    qty,
			Rate:        rate,
			Multiplier:  mult,
			Amount:      amount,
			IsTaxable:   true,
			Position:    len(lines),
		})
	}

	base := basePay(comp, p, att)
	addLine(payroll.LineTypeBasic, "BASIC", "Basic pay", decimal.NewFromInt(1), base, decimal.NewFromInt(1), base)

	// Absences reduce salaried pay; attendance-scaled pay types already
	// reflect unworked days. Negative lines keep the deduction visible
	// instead of silently folding it into basic pay.
	absence := decimal.Zero
	if att.AbsentDays > 0 && isSalaried(comp.PayType) {
		absence = AbsenceDeduction(dailyRate, att.AbsentDays)
		addLine(payroll.LineTypeAbsence, "ABS", "Absences",
			decimal.NewFromInt(int64(att.AbsentDays)), dailyRate, decimal.NewFromInt(1), absence.Neg())
	}

	tardiness := decimal.Zero
	if att.LateMinutes+att.UndertimeMinutes > 0 {
		tardiness = TardinessDeduction(minuteRate, att.LateMinutes, att.UndertimeMinutes)
		addLine(payroll.LineTypeTardiness, "TARDY", "Late and undertime",
			decimal.NewFromInt(int64(att.LateMinutes+att.UndertimeMinutes)), minuteRate, decimal.NewFromInt(1), tardiness.Neg())
	}

	basic := base.Sub(absence).Sub(tardiness)
	if basic.IsNegative() {
		basic = decimal.Zero
	}
	basic = basic.Round(2)

	overtimePay := decimal.Zero
	if att.OvertimeMinutes > 0 {
		overtimePay = OvertimePay(att.OvertimeMinutes, hourlyRate, MultiplierOvertimeRegular)
		addLine(payroll.LineTypeOvertime, "OT", "Overtime",
			decimal.NewFromInt(int64(att.OvertimeMinutes)), hourlyRate, MultiplierOvertimeRegular, overtimePay)
	}

	// Night differential is independent of overtime: an overtime hour may
	// simultaneously fall in the night window, so the two are additive.
	nightDiffPay := decimal.Zero
	if att.NightDiffMinutes > 0 {
		nightDiffPay = NightDiffPay(att.NightDiffMinutes, hourlyRate)
		addLine(payroll.LineTypeNightDiff, "ND", "Night differential",
			decimal.NewFromInt(int64(att.NightDiffMinutes)), hourlyRate, NightDiffPremium, nightDiffPay)
	}

	holidayPay := decimal.Zero
	for _, t := range holidayLineOrder {
		days := att.HolidayDays[t]
		if days == 0 {
			continue
		}
		pay := HolidayPay(dailyRate, t, days)
		holidayPay = holidayPay.Add(pay)
		addLine(payroll.LineTypeHoliday, "HOL-"+string(t), fmt.Sprintf("Holiday pay (%s)", t),
			decimal.NewFromInt(int64(days)), dailyRate, HolidayWorkMultiplier(t), pay)
	}

	allowances := decimal.Zero
	bonuses := decimal.Zero
	for _, adj := range adjustments {
		addLine(adj.Tag, adj.Adjustment.Type.Code, adj.Adjustment.Type.Name,
			decimal.NewFromInt(1), adj.Amount, decimal.NewFromInt(1), adj.Amount)
		if adj.Tag == payroll.LineTypeBonus {
			bonuses = bonuses.Add(adj.Amount)
		} else {
			allowances = allowances.Add(adj.Amount)
		}
	}

	gross := basic.Add(overtimePay).Add(nightDiffPay).Add(holidayPay).Add(allowances).Add(bonuses)

	return EarningsResult{
		BasicPay:     basic,
		OvertimePay:  overtimePay,
		NightDiffPay: nightDiffPay,
		HolidayPay:   holidayPay,
		Allowances:   allowances,
		Bonuses:      bonuses,
		GrossPay:     gross,
		Lines:        lines,
	}
}

// basePay computes the pre-deduction basic pay line by pay type.
func basePay(comp *employee.CompensationProfile, p period.PayrollPeriod, att AttendanceSummary) decimal.Decimal {
	switch comp.PayType {
	case employee.PayTypeMonthly:
		if p.CycleType == period.CycleSemiMonthly {
			return comp.BasicPay.Div(two).Round(2)
		}
		return comp.BasicPay.Round(2)
	case employee.PayTypeSemiMonthly:
		// Stored amount is already the per-cutoff figure.
		return comp.BasicPay.Round(2)
	case employee.PayTypeDaily:
		return DailyRate(comp.BasicPay, comp.PayType).Mul(decimal.NewFromInt(int64(att.DaysWorked))).Round(2)
	case employee.PayTypeWeekly:
		weeks := (att.DaysWorked + 4) / 5 // ceil(daysWorked / 5)
		return comp.BasicPay.Mul(decimal.NewFromInt(int64(weeks))).Round(2)
	default:
		panic(fmt.Sprintf("unhandled pay type %q", comp.PayType))
	}
}

func isSalaried(t employee.PayType) bool {
	return t == employee.PayTypeMonthly || t == employee.PayTypeSemiMonthly
}
