package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines the read surface the payroll engine needs.
type AttendanceRepository interface {
	// ListByEmployeeRange returns day records whose date falls within
	// [start, end] inclusive.
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]DayRecord, error)
	// ListHolidaysInRange returns every holiday in the range regardless of
	// work location; the aggregator filters by national-or-matching-location.
	ListHolidaysInRange(ctx context.Context, companyID string, start, end time.Time) ([]Holiday, error)
	GetOvertimeRequests(ctx context.Context, ids []string) (map[string]OvertimeRequest, error)
}
