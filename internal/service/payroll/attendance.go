package payroll

import (
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/attendance"
)

// AttendanceSummary is the per-period aggregate the composers consume.
// It is constructed fresh per computation and never persisted on its own;
// the totals are folded into the payroll entry snapshot.
type AttendanceSummary struct {
	DaysWorked       int
	AbsentDays       int
	RegularMinutes   int
	LateMinutes      int
	UndertimeMinutes int
	OvertimeMinutes  int
	NightDiffMinutes int

	// HolidayDays groups holiday-work days by holiday type: records whose
	// date matches a holiday in range and whose status is exactly holiday.
	HolidayDays map[attendance.HolidayType]int
}

const dateKeyLayout = "2006-01-02"

// SummarizeAttendance folds an employee's daily records and the holiday
// calendar into per-period totals.
//
// Overtime counts only when the record's overtime was approved and a
// request is linked, capped per record at the request's expected minutes.
// Holiday matching is by exact calendar date; when a national and a
// location-specific holiday share a date, presence (not count) drives the
// lookup. An employee with no work location sees only national holidays.
func SummarizeAttendance(
	days []attendance.DayRecord,
	holidays []attendance.Holiday,
	requests map[string]attendance.OvertimeRequest,
	workLocationID *string,
) AttendanceSummary {
	holidayByDate := make(map[string]attendance.Holiday)
	for _, h := range holidays {
		if !h.IsNational {
			if workLocationID == nil || h.WorkLocationID == nil || *h.WorkLocationID != *workLocationID {
				continue
			}
		}
		key := h.Date.Format(dateKeyLayout)
		if _, ok := holidayByDate[key]; !ok {
			holidayByDate[key] = h
		}
	}

	summary := AttendanceSummary{
		HolidayDays: make(map[attendance.HolidayType]int),
	}

	for _, d := range days {
		switch d.Status {
		case attendance.DayStatusPresent:
			summary.DaysWorked++
		case attendance.DayStatusHoliday:
			summary.DaysWorked++
			if h, ok := holidayByDate[d.Date.Format(dateKeyLayout)]; ok {
				summary.HolidayDays[h.Type]++
			}
		case attendance.DayStatusAbsent:
			summary.AbsentDays++
		}

		summary.RegularMinutes += d.WorkMinutes
		summary.LateMinutes += d.LateMinutes
		summary.UndertimeMinutes += d.UndertimeMinutes
		summary.NightDiffMinutes += d.NightDiffMinutes
		summary.OvertimeMinutes += approvedOvertime(d, requests)
	}

	return summary
}

// approvedOvertime caps a record's overtime at its linked request's
// expected minutes. Unapproved or request-less overtime contributes zero.
func approvedOvertime(d attendance.DayRecord, requests map[string]attendance.OvertimeRequest) int {
	if !d.OvertimeApproved || d.OvertimeRequestID == nil {
		return 0
	}
	req, ok := requests[*d.OvertimeRequestID]
	if !ok {
		return 0
	}
	if d.OvertimeMinutes < req.ExpectedMinutes {
		return d.OvertimeMinutes
	}
	return req.ExpectedMinutes
}
