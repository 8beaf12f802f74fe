package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
)

type periodRepositoryImpl struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepositoryImpl{db: db}
}

const periodColumns = `
	id, company_id, cutoff_start, cutoff_end, pay_date, period_number, cycle_type, status,
	total_employees, total_gross, total_deductions, total_net, created_at, updated_at
`

// Create implements period.PeriodRepository.
func (r *periodRepositoryImpl) Create(ctx context.Context, p period.PayrollPeriod) (period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (
			id, company_id, cutoff_start, cutoff_end, pay_date, period_number, cycle_type, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + periodColumns + `
	`

	created, err := scanPeriod(q.QueryRow(ctx, query,
		uuid.New().String(), p.CompanyID, p.CutoffStart, p.CutoffEnd, p.PayDate,
		p.PeriodNumber, p.CycleType, period.StatusOpen,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return period.PayrollPeriod{}, period.ErrPeriodAlreadyExists
		}
		return period.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return created, nil
}

// GetByID implements period.PeriodRepository.
func (r *periodRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE id = $1 AND company_id = $2
	`

	p, err := scanPeriod(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.PayrollPeriod{}, period.ErrPeriodNotFound
		}
		return period.PayrollPeriod{}, fmt.Errorf("failed to get payroll period %s: %w", id, err)
	}

	return p, nil
}

// ListByCompanyID implements period.PeriodRepository.
func (r *periodRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE company_id = $1
		ORDER BY cutoff_start DESC, period_number DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []period.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

// UpdateTotals implements period.PeriodRepository.
func (r *periodRepositoryImpl) UpdateTotals(ctx context.Context, id string, companyID string, totals period.PeriodTotals) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET total_employees = $1, total_gross = $2, total_deductions = $3, total_net = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		totals.TotalEmployees, totals.TotalGross, totals.TotalDeductions, totals.TotalNet,
		id, companyID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to update totals for period %s: %w", id, err)
	}

	return nil
}

// CloseEnded implements period.PeriodRepository. Periods whose pay date has
// passed are closed in one statement; the count feeds the cron job's log line.
func (r *periodRepositoryImpl) CloseEnded(ctx context.Context, asOf time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND pay_date < $3
	`

	tag, err := q.Exec(ctx, query, period.StatusClosed, period.StatusOpen, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to close ended periods: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func scanPeriod(row pgx.Row) (period.PayrollPeriod, error) {
	var p period.PayrollPeriod
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.CutoffStart, &p.CutoffEnd, &p.PayDate,
		&p.PeriodNumber, &p.CycleType, &p.Status,
		&p.TotalEmployees, &p.TotalGross, &p.TotalDeductions, &p.TotalNet,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
