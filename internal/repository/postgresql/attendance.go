package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/suweldo-hq/payroll-engine-go/internal/domain/attendance"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, status, work_minutes, late_minutes, undertime_minutes,
			overtime_minutes, overtime_approved, overtime_request_id, night_diff_minutes, created_at, updated_at
		FROM attendance_days
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		var d attendance.DayRecord
		err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.CompanyID, &d.Date, &d.Status, &d.WorkMinutes, &d.LateMinutes,
			&d.UndertimeMinutes, &d.OvertimeMinutes, &d.OvertimeApproved, &d.OvertimeRequestID,
			&d.NightDiffMinutes, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListHolidaysInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListHolidaysInRange(ctx context.Context, companyID string, start, end time.Time) ([]attendance.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, date, type, is_national, work_location_id
		FROM holidays
		WHERE company_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []attendance.Holiday
	for rows.Next() {
		var h attendance.Holiday
		err := rows.Scan(&h.ID, &h.CompanyID, &h.Name, &h.Date, &h.Type, &h.IsNational, &h.WorkLocationID)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// GetOvertimeRequests implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOvertimeRequests(ctx context.Context, ids []string) (map[string]attendance.OvertimeRequest, error) {
	requests := make(map[string]attendance.OvertimeRequest, len(ids))
	if len(ids) == 0 {
		return requests, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, expected_minutes
		FROM overtime_requests
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var req attendance.OvertimeRequest
		err := rows.Scan(&req.ID, &req.EmployeeID, &req.Date, &req.ExpectedMinutes)
		if err != nil {
			return nil, err
		}
		requests[req.ID] = req
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
