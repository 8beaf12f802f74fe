package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/attendance"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
)

// Rate derivation and the regulatory multiplier table. Everything here is
// pure; an unmatched pay type or holiday type is a programming error, not a
// runtime condition, so the switches panic instead of returning errors.

var (
	standardMonthlyDays = decimal.NewFromInt(22) // standard working days per month
	workDaysPerWeek     = decimal.NewFromInt(5)
	hoursPerDay         = decimal.NewFromInt(8)
	minutesPerDay       = decimal.NewFromInt(480)
	minutesPerHour      = decimal.NewFromInt(60)
	two                 = decimal.NewFromInt(2)
)

// Overtime multipliers by day type. The baseline gross-pay composer applies
// only MultiplierOvertimeRegular; the premium constants are carried for the
// per-record day-type breakdown.
var (
	MultiplierOvertimeRegular        = decimal.NewFromFloat(1.25)
	MultiplierOvertimeRestDay        = decimal.NewFromFloat(1.30)
	MultiplierOvertimeSpecialHoliday = decimal.NewFromFloat(1.30)
	MultiplierOvertimeRegularHoliday = decimal.NewFromFloat(2.00)
	MultiplierOvertimeDoubleHoliday  = decimal.NewFromFloat(3.90)
)

// NightDiffPremium is additive: night-diff pay is hours * hourlyRate * 0.10
// on top of the base pay for those hours, not a replacement rate.
var NightDiffPremium = decimal.NewFromFloat(0.10)

// HolidayWorkMultiplier returns the pay multiplier for a day worked on a
// holiday of the given type.
func HolidayWorkMultiplier(t attendance.HolidayType) decimal.Decimal {
	switch t {
	case attendance.HolidaySpecial:
		return decimal.NewFromFloat(1.30)
	case attendance.HolidayRegular:
		return decimal.NewFromFloat(2.00)
	case attendance.HolidayDouble:
		return decimal.NewFromFloat(3.00)
	default:
		panic(fmt.Sprintf("unhandled holiday type %q", t))
	}
}

// DailyRate derives the daily pay rate from basic pay and pay type,
// rounded to 4 decimal places.
func DailyRate(basicPay decimal.Decimal, payType employee.PayType) decimal.Decimal {
	switch payType {
	case employee.PayTypeMonthly:
		return basicPay.Div(standardMonthlyDays).Round(4)
	case employee.PayTypeSemiMonthly:
		return basicPay.Mul(two).Div(standardMonthlyDays).Round(4)
	case employee.PayTypeWeekly:
		return basicPay.Div(workDaysPerWeek).Round(4)
	case employee.PayTypeDaily:
		return basicPay
	default:
		panic(fmt.Sprintf("unhandled pay type %q", payType))
	}
}

// HourlyRate is the daily rate over an 8-hour day, rounded to 4 places.
func HourlyRate(dailyRate decimal.Decimal) decimal.Decimal {
	return dailyRate.Div(hoursPerDay).Round(4)
}

// MinuteRate is the daily rate over a 480-minute day, rounded to 6 places
// to avoid truncation drift across thousands of minute multiplications.
func MinuteRate(dailyRate decimal.Decimal) decimal.Decimal {
	return dailyRate.Div(minutesPerDay).Round(6)
}

// MonthlyEquivalent normalizes basic pay to a monthly figure for
// regulatory bracket lookups regardless of actual pay frequency.
func MonthlyEquivalent(basicPay decimal.Decimal, payType employee.PayType) decimal.Decimal {
	switch payType {
	case employee.PayTypeMonthly:
		return basicPay
	case employee.PayTypeSemiMonthly:
		return basicPay.Mul(two)
	case employee.PayTypeWeekly:
		return basicPay.Mul(decimal.NewFromFloat(4.33))
	case employee.PayTypeDaily:
		return basicPay.Mul(standardMonthlyDays)
	default:
		panic(fmt.Sprintf("unhandled pay type %q", payType))
	}
}

// OvertimePay converts approved overtime minutes to pay at the given
// multiplier.
func OvertimePay(minutes int, hourlyRate, multiplier decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Mul(hourlyRate).Mul(multiplier).Round(2)
}

// NightDiffPay pays the additive 10% premium on night-shift minutes.
func NightDiffPay(minutes int, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Mul(hourlyRate).Mul(NightDiffPremium).Round(2)
}

// HolidayPay pays daysWorked days at the holiday type's multiplier.
func HolidayPay(dailyRate decimal.Decimal, t attendance.HolidayType, daysWorked int) decimal.Decimal {
	return dailyRate.Mul(HolidayWorkMultiplier(t)).Mul(decimal.NewFromInt(int64(daysWorked))).Round(2)
}

// AbsenceDeduction is the salary deduction for unworked days.
func AbsenceDeduction(dailyRate decimal.Decimal, absentDays int) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(absentDays))).Round(2)
}

// TardinessDeduction is the minute-rate deduction for late plus undertime
// minutes.
func TardinessDeduction(minuteRate decimal.Decimal, lateMinutes, undertimeMinutes int) decimal.Decimal {
	return minuteRate.Mul(decimal.NewFromInt(int64(lateMinutes + undertimeMinutes))).Round(2)
}
