package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/attendance"
)

func day(date string, status attendance.DayStatus) attendance.DayRecord {
	return attendance.DayRecord{
		Date:        mustDate(date),
		Status:      status,
		WorkMinutes: 480,
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func TestSummarizeAttendanceCountsByStatus(t *testing.T) {
	days := []attendance.DayRecord{
		day("2026-01-05", attendance.DayStatusPresent),
		day("2026-01-06", attendance.DayStatusPresent),
		day("2026-01-07", attendance.DayStatusAbsent),
		day("2026-01-08", attendance.DayStatusLeave),
	}
	days[0].LateMinutes = 30
	days[1].UndertimeMinutes = 15
	days[1].NightDiffMinutes = 60

	sum := SummarizeAttendance(days, nil, nil, nil)

	assert.Equal(t, 2, sum.DaysWorked)
	assert.Equal(t, 1, sum.AbsentDays)
	assert.Equal(t, 30, sum.LateMinutes)
	assert.Equal(t, 15, sum.UndertimeMinutes)
	assert.Equal(t, 60, sum.NightDiffMinutes)
	// Leave days contribute their minutes but are neither worked nor absent.
	assert.Equal(t, 480*4, sum.RegularMinutes)
}

func TestSummarizeAttendanceOvertimeRequiresApprovedRequest(t *testing.T) {
	reqID := "ot-1"
	days := []attendance.DayRecord{
		{Date: mustDate("2026-01-05"), Status: attendance.DayStatusPresent, OvertimeMinutes: 120, OvertimeApproved: true, OvertimeRequestID: &reqID},
		// Approved flag without a linked request pays nothing.
		{Date: mustDate("2026-01-06"), Status: attendance.DayStatusPresent, OvertimeMinutes: 90, OvertimeApproved: true},
		// Linked request without approval pays nothing.
		{Date: mustDate("2026-01-07"), Status: attendance.DayStatusPresent, OvertimeMinutes: 60, OvertimeRequestID: &reqID},
	}
	requests := map[string]attendance.OvertimeRequest{
		"ot-1": {ID: "ot-1", ExpectedMinutes: 90},
	}

	sum := SummarizeAttendance(days, nil, requests, nil)

	// Record overtime caps at the request's expected minutes: min(120, 90).
	assert.Equal(t, 90, sum.OvertimeMinutes)
}

func TestSummarizeAttendanceOvertimeUsesRecordedWhenBelowExpected(t *testing.T) {
	reqID := "ot-2"
	days := []attendance.DayRecord{
		{Date: mustDate("2026-01-05"), Status: attendance.DayStatusPresent, OvertimeMinutes: 45, OvertimeApproved: true, OvertimeRequestID: &reqID},
	}
	requests := map[string]attendance.OvertimeRequest{
		"ot-2": {ID: "ot-2", ExpectedMinutes: 120},
	}

	sum := SummarizeAttendance(days, nil, requests, nil)
	assert.Equal(t, 45, sum.OvertimeMinutes)
}

func TestSummarizeAttendanceHolidayMatching(t *testing.T) {
	holidays := []attendance.Holiday{
		{Date: mustDate("2026-01-01"), Type: attendance.HolidayRegular, IsNational: true},
		{Date: mustDate("2026-01-09"), Type: attendance.HolidaySpecial, IsNational: false, WorkLocationID: strPtr("loc-a")},
	}
	days := []attendance.DayRecord{
		day("2026-01-01", attendance.DayStatusHoliday),
		day("2026-01-09", attendance.DayStatusHoliday),
		// Holiday status without a calendar match counts as worked only.
		day("2026-01-12", attendance.DayStatusHoliday),
	}

	sum := SummarizeAttendance(days, holidays, nil, strPtr("loc-a"))

	assert.Equal(t, 3, sum.DaysWorked)
	assert.Equal(t, 1, sum.HolidayDays[attendance.HolidayRegular])
	assert.Equal(t, 1, sum.HolidayDays[attendance.HolidaySpecial])
}

func TestSummarizeAttendanceLocationHolidayFiltered(t *testing.T) {
	holidays := []attendance.Holiday{
		{Date: mustDate("2026-01-09"), Type: attendance.HolidaySpecial, IsNational: false, WorkLocationID: strPtr("loc-a")},
	}
	days := []attendance.DayRecord{
		day("2026-01-09", attendance.DayStatusHoliday),
	}

	// Different location: the local holiday does not apply.
	sum := SummarizeAttendance(days, holidays, nil, strPtr("loc-b"))
	assert.Empty(t, sum.HolidayDays)

	// No work location at all: only national holidays apply.
	sum = SummarizeAttendance(days, holidays, nil, nil)
	assert.Empty(t, sum.HolidayDays)
}
