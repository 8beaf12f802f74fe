package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/contribution"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
)

type contributionRepositoryImpl struct {
	db *database.DB
}

func NewContributionRepository(db *database.DB) contribution.ContributionRepository {
	return &contributionRepositoryImpl{db: db}
}

// GetTableInEffect implements contribution.ContributionRepository.
func (r *contributionRepositoryImpl) GetTableInEffect(ctx context.Context, scheme contribution.SchemeCode, asOf time.Time) (contribution.ContributionTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, scheme, effective_from
		FROM contribution_tables
		WHERE scheme = $1 AND effective_from <= $2
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var table contribution.ContributionTable
	err := q.QueryRow(ctx, query, scheme, asOf).Scan(&table.ID, &table.Scheme, &table.EffectiveFrom)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contribution.ContributionTable{}, contribution.ErrNoTableInEffect
		}
		return contribution.ContributionTable{}, fmt.Errorf("failed to get %s table: %w", scheme, err)
	}

	bracketQuery := `
		SELECT salary_from, salary_to, employee_amount, employer_amount, employee_rate, employer_rate
		FROM contribution_brackets
		WHERE table_id = $1
		ORDER BY salary_from
	`

	rows, err := q.Query(ctx, bracketQuery, table.ID)
	if err != nil {
		return contribution.ContributionTable{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var b contribution.Bracket
		err := rows.Scan(&b.SalaryFrom, &b.SalaryTo, &b.EmployeeAmount, &b.EmployerAmount, &b.EmployeeRate, &b.EmployerRate)
		if err != nil {
			return contribution.ContributionTable{}, err
		}
		table.Brackets = append(table.Brackets, b)
	}

	if err = rows.Err(); err != nil {
		return contribution.ContributionTable{}, err
	}

	return table, nil
}

// GetTaxScheduleInEffect implements contribution.ContributionRepository.
func (r *contributionRepositoryImpl) GetTaxScheduleInEffect(ctx context.Context, asOf time.Time) (contribution.TaxSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, effective_from
		FROM tax_schedules
		WHERE effective_from <= $1
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var schedule contribution.TaxSchedule
	err := q.QueryRow(ctx, query, asOf).Scan(&schedule.ID, &schedule.EffectiveFrom)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contribution.TaxSchedule{}, contribution.ErrNoTableInEffect
		}
		return contribution.TaxSchedule{}, fmt.Errorf("failed to get tax schedule: %w", err)
	}

	bracketQuery := `
		SELECT income_from, income_to, base_tax, rate
		FROM tax_brackets
		WHERE schedule_id = $1
		ORDER BY income_from
	`

	rows, err := q.Query(ctx, bracketQuery, schedule.ID)
	if err != nil {
		return contribution.TaxSchedule{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var b contribution.TaxBracket
		err := rows.Scan(&b.IncomeFrom, &b.IncomeTo, &b.BaseTax, &b.Rate)
		if err != nil {
			return contribution.TaxSchedule{}, err
		}
		schedule.Brackets = append(schedule.Brackets, b)
	}

	if err = rows.Err(); err != nil {
		return contribution.TaxSchedule{}, err
	}

	return schedule, nil
}
