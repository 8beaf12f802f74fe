package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/payroll"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const entryColumns = `
	p.id, p.company_id, p.employee_id, p.period_id,
	p.days_worked, p.absent_days, p.late_minutes, p.undertime_minutes, p.overtime_minutes, p.night_diff_minutes,
	p.basic_pay, p.overtime_pay, p.night_diff_pay, p.holiday_pay, p.allowances, p.bonuses, p.gross_pay,
	p.sss_employee, p.sss_employer, p.philhealth_employee, p.philhealth_employer,
	p.pagibig_employee, p.pagibig_employer, p.withholding_tax, p.loan_deductions, p.other_deductions,
	p.total_deductions, p.total_employer_share, p.net_pay,
	p.status, p.computed_at, p.computed_by, p.reviewed_at, p.reviewed_by,
	p.approved_at, p.approved_by, p.paid_at, p.paid_by,
	p.created_at, p.updated_at,
	e.full_name, e.employee_code
`

const entryFrom = `
	FROM payroll_entries p
	JOIN employees e ON e.id = p.employee_id
`

// GetEntryByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetEntryByID(ctx context.Context, id string, companyID string) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + entryFrom + `
		WHERE p.id = $1 AND p.company_id = $2
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get payroll entry %s: %w", id, err)
	}

	return entry, nil
}

// GetEntryByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetEntryByEmployeePeriod(ctx context.Context, employeeID, periodID string) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + entryFrom + `
		WHERE p.employee_id = $1 AND p.period_id = $2
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, employeeID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get payroll entry for employee %s: %w", employeeID, err)
	}

	return entry, nil
}

// ListEntriesByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListEntriesByPeriod(ctx context.Context, periodID string, companyID string) ([]payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + entryFrom + `
		WHERE p.period_id = $1 AND p.company_id = $2
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, periodID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ListLineItems implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListLineItems(ctx context.Context, entryID string) ([]payroll.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, entry_id, kind, type, code, description, quantity, rate, multiplier,
			amount, is_taxable, is_employer_share, position, created_at
		FROM payroll_line_items
		WHERE entry_id = $1
		ORDER BY kind, position
	`

	rows, err := q.Query(ctx, query, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []payroll.LineItem
	for rows.Next() {
		var l payroll.LineItem
		err := rows.Scan(
			&l.ID, &l.EntryID, &l.Kind, &l.Type, &l.Code, &l.Description,
			&l.Quantity, &l.Rate, &l.Multiplier, &l.Amount,
			&l.IsTaxable, &l.IsEmployerShare, &l.Position, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReplaceEntry implements payroll.PayrollRepository. The delete, upsert and
// inserts must run inside one transaction (the caller provides it via the
// context); an aborted computation leaves the previous entry intact.
func (r *payrollRepositoryImpl) ReplaceEntry(ctx context.Context, entry payroll.Entry, lines []payroll.LineItem) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_line_items WHERE entry_id = $1`, entry.ID); err != nil {
		return payroll.Entry{}, fmt.Errorf("failed to clear line items: %w", err)
	}

	upsert := `
		INSERT INTO payroll_entries (
			id, company_id, employee_id, period_id,
			days_worked, absent_days, late_minutes, undertime_minutes, overtime_minutes, night_diff_minutes,
			basic_pay, overtime_pay, night_diff_pay, holiday_pay, allowances, bonuses, gross_pay,
			sss_employee, sss_employer, philhealth_employee, philhealth_employer,
			pagibig_employee, pagibig_employer, withholding_tax, loan_deductions, other_deductions,
			total_deductions, total_employer_share, net_pay,
			status, computed_at, computed_by
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21,
			$22, $23, $24, $25, $26,
			$27, $28, $29,
			$30, $31, $32
		)
		ON CONFLICT (employee_id, period_id) DO UPDATE SET
			days_worked = EXCLUDED.days_worked, absent_days = EXCLUDED.absent_days,
			late_minutes = EXCLUDED.late_minutes, undertime_minutes = EXCLUDED.undertime_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes, night_diff_minutes = EXCLUDED.night_diff_minutes,
			basic_pay = EXCLUDED.basic_pay, overtime_pay = EXCLUDED.overtime_pay,
			night_diff_pay = EXCLUDED.night_diff_pay, holiday_pay = EXCLUDED.holiday_pay,
			allowances = EXCLUDED.allowances, bonuses = EXCLUDED.bonuses, gross_pay = EXCLUDED.gross_pay,
			sss_employee = EXCLUDED.sss_employee, sss_employer = EXCLUDED.sss_employer,
			philhealth_employee = EXCLUDED.philhealth_employee, philhealth_employer = EXCLUDED.philhealth_employer,
			pagibig_employee = EXCLUDED.pagibig_employee, pagibig_employer = EXCLUDED.pagibig_employer,
			withholding_tax = EXCLUDED.withholding_tax, loan_deductions = EXCLUDED.loan_deductions,
			other_deductions = EXCLUDED.other_deductions, total_deductions = EXCLUDED.total_deductions,
			total_employer_share = EXCLUDED.total_employer_share, net_pay = EXCLUDED.net_pay,
			status = EXCLUDED.status, computed_at = EXCLUDED.computed_at, computed_by = EXCLUDED.computed_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, upsert,
		entry.ID, entry.CompanyID, entry.EmployeeID, entry.PeriodID,
		entry.DaysWorked, entry.AbsentDays, entry.LateMinutes, entry.UndertimeMinutes,
		entry.OvertimeMinutes, entry.NightDiffMinutes,
		entry.BasicPay, entry.OvertimePay, entry.NightDiffPay, entry.HolidayPay,
		entry.Allowances, entry.Bonuses, entry.GrossPay,
		entry.SSSEmployee, entry.SSSEmployer, entry.PhilHealthEmployee, entry.PhilHealthEmployer,
		entry.PagIbigEmployee, entry.PagIbigEmployer, entry.WithholdingTax,
		entry.LoanDeductions, entry.OtherDeductions,
		entry.TotalDeductions, entry.TotalEmployerShare, entry.NetPay,
		entry.Status, entry.ComputedAt, entry.ComputedBy,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return payroll.Entry{}, fmt.Errorf("failed to upsert payroll entry: %w", err)
	}

	insert := `
		INSERT INTO payroll_line_items (
			id, entry_id, kind, type, code, description, quantity, rate, multiplier,
			amount, is_taxable, is_employer_share, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	for _, l := range lines {
		_, err := q.Exec(ctx, insert,
			l.ID, entry.ID, l.Kind, l.Type, l.Code, l.Description,
			l.Quantity, l.Rate, l.Multiplier, l.Amount,
			l.IsTaxable, l.IsEmployerShare, l.Position,
		)
		if err != nil {
			return payroll.Entry{}, fmt.Errorf("failed to insert line item %s: %w", l.Code, err)
		}
	}

	return entry, nil
}

// UpdateEntryStatus implements payroll.PayrollRepository. The WHERE clause
// re-checks the current status so two racing transitions cannot both win.
func (r *payrollRepositoryImpl) UpdateEntryStatus(ctx context.Context, id string, companyID string, next payroll.EntryStatus, actorID string, at time.Time) (payroll.Entry, error) {
	current, err := r.GetEntryByID(ctx, id, companyID)
	if err != nil {
		return payroll.Entry{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		return payroll.Entry{}, fmt.Errorf("%w: %s -> %s", payroll.ErrInvalidTransition, current.Status, next)
	}

	stampColumn := map[payroll.EntryStatus][2]string{
		payroll.EntryStatusReviewed: {"reviewed_at", "reviewed_by"},
		payroll.EntryStatusApproved: {"approved_at", "approved_by"},
		payroll.EntryStatusPaid:     {"paid_at", "paid_by"},
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_entries
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND status = $4
		RETURNING id
	`
	args := []interface{}{next, id, companyID, current.Status}
	if cols, ok := stampColumn[next]; ok {
		query = fmt.Sprintf(`
			UPDATE payroll_entries
			SET status = $1, %s = $2, %s = $3, updated_at = NOW()
			WHERE id = $4 AND company_id = $5 AND status = $6
			RETURNING id
		`, cols[0], cols[1])
		args = []interface{}{next, at, actorID, id, companyID, current.Status}
	}

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Entry{}, payroll.ErrInvalidTransition
		}
		return payroll.Entry{}, fmt.Errorf("failed to transition entry %s: %w", id, err)
	}

	return r.GetEntryByID(ctx, id, companyID)
}

// SummarizePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SummarizePeriod(ctx context.Context, periodID string, companyID string) (period.PeriodTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COALESCE(SUM(gross_pay), 0), COALESCE(SUM(total_deductions), 0), COALESCE(SUM(net_pay), 0)
		FROM payroll_entries
		WHERE period_id = $1 AND company_id = $2
	`

	var totals period.PeriodTotals
	err := q.QueryRow(ctx, query, periodID, companyID).Scan(
		&totals.TotalEmployees, &totals.TotalGross, &totals.TotalDeductions, &totals.TotalNet,
	)
	if err != nil {
		return period.PeriodTotals{}, fmt.Errorf("failed to summarize period %s: %w", periodID, err)
	}

	return totals, nil
}

func scanEntry(row pgx.Row) (payroll.Entry, error) {
	var e payroll.Entry
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeID, &e.PeriodID,
		&e.DaysWorked, &e.AbsentDays, &e.LateMinutes, &e.UndertimeMinutes,
		&e.OvertimeMinutes, &e.NightDiffMinutes,
		&e.BasicPay, &e.OvertimePay, &e.NightDiffPay, &e.HolidayPay,
		&e.Allowances, &e.Bonuses, &e.GrossPay,
		&e.SSSEmployee, &e.SSSEmployer, &e.PhilHealthEmployee, &e.PhilHealthEmployer,
		&e.PagIbigEmployee, &e.PagIbigEmployer, &e.WithholdingTax,
		&e.LoanDeductions, &e.OtherDeductions,
		&e.TotalDeductions, &e.TotalEmployerShare, &e.NetPay,
		&e.Status, &e.ComputedAt, &e.ComputedBy, &e.ReviewedAt, &e.ReviewedBy,
		&e.ApprovedAt, &e.ApprovedBy, &e.PaidAt, &e.PaidBy,
		&e.CreatedAt, &e.UpdatedAt,
		&e.EmployeeName, &e.EmployeeCode,
	)
	return e, err
}
