package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/attendance"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

func monthlyComp(basicPay string) *employee.CompensationProfile {
	return &employee.CompensationProfile{
		BasicPay: d(basicPay),
		PayType:  employee.PayTypeMonthly,
		Currency: "PHP",
	}
}

func fullAttendance(days int) AttendanceSummary {
	return AttendanceSummary{
		DaysWorked:  days,
		HolidayDays: map[attendance.HolidayType]int{},
	}
}

func lineByType(lines []payroll.LineItem, t payroll.LineType) (payroll.LineItem, bool) {
	for _, l := range lines {
		if l.Type == t {
			return l, true
		}
	}
	return payroll.LineItem{}, false
}

func TestComposeEarningsNilCompensation(t *testing.T) {
	res := ComposeEarnings(nil, semiMonthlyPeriod(1), fullAttendance(11), nil)

	assert.True(t, res.GrossPay.IsZero())
	assert.True(t, res.BasicPay.IsZero())
	assert.Empty(t, res.Lines)
}

func TestComposeEarningsMonthlyOnSemiMonthlyCutoff(t *testing.T) {
	res := ComposeEarnings(monthlyComp("44000"), semiMonthlyPeriod(1), fullAttendance(11), nil)

	assert.True(t, res.BasicPay.Equal(d("22000")), "got %s", res.BasicPay)
	assert.True(t, res.GrossPay.Equal(d("22000")))

	basic, ok := lineByType(res.Lines, payroll.LineTypeBasic)
	require.True(t, ok)
	assert.True(t, basic.Amount.Equal(d("22000")))
	assert.True(t, basic.IsTaxable)
}

func TestComposeEarningsAbsenceAndTardiness(t *testing.T) {
	att := fullAttendance(9)
	att.AbsentDays = 2
	att.LateMinutes = 120

	res := ComposeEarnings(monthlyComp("44000"), semiMonthlyPeriod(1), att, nil)

	// 22000 - 2*2000 absence - 500 tardiness
	assert.True(t, res.BasicPay.Equal(d("17500")), "got %s", res.BasicPay)

	absence, ok := lineByType(res.Lines, payroll.LineTypeAbsence)
	require.True(t, ok)
	assert.True(t, absence.Amount.Equal(d("-4000")), "audit line is negative, got %s", absence.Amount)

	tardy, ok := lineByType(res.Lines, payroll.LineTypeTardiness)
	require.True(t, ok)
	assert.True(t, tardy.Amount.Equal(d("-500")), "got %s", tardy.Amount)
}

func TestComposeEarningsBasicNeverNegative(t *testing.T) {
	att := fullAttendance(0)
	att.AbsentDays = 20

	res := ComposeEarnings(monthlyComp("44000"), semiMonthlyPeriod(1), att, nil)
	assert.True(t, res.BasicPay.IsZero(), "got %s", res.BasicPay)
}

func TestComposeEarningsOvertimeAndNightDiff(t *testing.T) {
	att := fullAttendance(11)
	att.OvertimeMinutes = 180
	att.NightDiffMinutes = 120

	res := ComposeEarnings(monthlyComp("44000"), semiMonthlyPeriod(1), att, nil)

	// hourly 250: OT 3h * 250 * 1.25; ND 2h * 250 * 0.10
	assert.True(t, res.OvertimePay.Equal(d("937.50")), "got %s", res.OvertimePay)
	assert.True(t, res.NightDiffPay.Equal(d("50")), "got %s", res.NightDiffPay)
	assert.True(t, res.GrossPay.Equal(d("22987.50")), "got %s", res.GrossPay)
}

func TestComposeEarningsHolidayLines(t *testing.T) {
	att := fullAttendance(11)
	att.HolidayDays[attendance.HolidayRegular] = 1
	att.HolidayDays[attendance.HolidaySpecial] = 1

	res := ComposeEarnings(monthlyComp("44000"), semiMonthlyPeriod(1), att, nil)

	// regular 2000*2.00 + special 2000*1.30
	assert.True(t, res.HolidayPay.Equal(d("6600")), "got %s", res.HolidayPay)

	// Special emits before regular regardless of map iteration order.
	var holidayCodes []string
	for _, l := range res.Lines {
		if l.Type == payroll.LineTypeHoliday {
			holidayCodes = append(holidayCodes, l.Code)
		}
	}
	assert.Equal(t, []string{"HOL-special", "HOL-regular"}, holidayCodes)
}

func TestComposeEarningsDailyPayTypeScalesWithAttendance(t *testing.T) {
	comp := &employee.CompensationProfile{BasicPay: d("1500"), PayType: employee.PayTypeDaily}
	att := fullAttendance(8)
	att.AbsentDays = 3

	res := ComposeEarnings(comp, semiMonthlyPeriod(1), att, nil)

	// 8 days worked at 1500; absences are not deducted twice.
	assert.True(t, res.BasicPay.Equal(d("12000")), "got %s", res.BasicPay)
	_, ok := lineByType(res.Lines, payroll.LineTypeAbsence)
	assert.False(t, ok, "attendance-scaled pay types carry no absence line")
}

func TestComposeEarningsMonthlyPayTypeOnMonthlyCycle(t *testing.T) {
	p := period.PayrollPeriod{PeriodNumber: 1, CycleType: period.CycleMonthly}
	res := ComposeEarnings(monthlyComp("44000"), p, fullAttendance(22), nil)
	assert.True(t, res.BasicPay.Equal(d("44000")))
}

func TestComposeEarningsAdjustmentBuckets(t *testing.T) {
	adjs := []ResolvedAdjustment{
		{Adjustment: earningAdjustment("a1", "1000"), Amount: d("1000"), Tag: payroll.LineTypeAllowance},
		{Adjustment: earningAdjustment("a2", "5000"), Amount: d("5000"), Tag: payroll.LineTypeBonus},
		{Adjustment: earningAdjustment("a3", "250"), Amount: d("250"), Tag: payroll.LineTypeAdjustment},
	}

	res := ComposeEarnings(monthlyComp("44000"), semiMonthlyPeriod(1), fullAttendance(11), adjs)

	assert.True(t, res.Allowances.Equal(d("1250")), "allowance + generic adjustment, got %s", res.Allowances)
	assert.True(t, res.Bonuses.Equal(d("5000")))
	assert.True(t, res.GrossPay.Equal(d("28250")))
}

func TestComposeEarningsLinePositionsSequential(t *testing.T) {
	att := fullAttendance(11)
	att.OvertimeMinutes = 60
	att.LateMinutes = 10

	res := ComposeEarnings(monthlyComp("44000"), semiMonthlyPeriod(1), att, nil)

	for i, l := range res.Lines {
		assert.Equal(t, i, l.Position)
		assert.Equal(t, payroll.LineKindEarning, l.Kind)
	}
}
