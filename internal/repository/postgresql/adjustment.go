package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/adjustment"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

const adjustmentColumns = `
	a.id, a.employee_id, a.company_id, a.category, a.amount, a.status,
	a.target_period_id, a.recurring_start, a.recurring_end, a.interval,
	a.total_amount, a.total_applied, a.remaining_balance, a.created_at, a.updated_at,
	t.code, t.name, t.is_allowance, t.is_bonus, t.is_loan
`

const adjustmentFrom = `
	FROM pay_adjustments a
	JOIN adjustment_types t ON t.code = a.type_code AND t.company_id = a.company_id
`

// ListActiveByEmployee implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string) ([]adjustment.PayAdjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + adjustmentFrom + `
		WHERE a.employee_id = $1 AND a.status = $2
		ORDER BY a.created_at
	`
	return r.list(ctx, query, employeeID, adjustment.StatusActive)
}

// ListByEmployee implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]adjustment.PayAdjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + adjustmentFrom + `
		WHERE a.employee_id = $1
		ORDER BY a.created_at
	`
	return r.list(ctx, query, employeeID)
}

func (r *adjustmentRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]adjustment.PayAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adjustments []adjustment.PayAdjustment
	for rows.Next() {
		var a adjustment.PayAdjustment
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.CompanyID, &a.Category, &a.Amount, &a.Status,
			&a.TargetPeriodID, &a.RecurringStart, &a.RecurringEnd, &a.Interval,
			&a.TotalAmount, &a.TotalApplied, &a.RemainingBalance, &a.CreatedAt, &a.UpdatedAt,
			&a.Type.Code, &a.Type.Name, &a.Type.IsAllowance, &a.Type.IsBonus, &a.Type.IsLoan,
		)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return adjustments, nil
}

// ApplicationsForPeriod implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ApplicationsForPeriod(ctx context.Context, employeeID, periodID string) (map[string]adjustment.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ap.id, ap.adjustment_id, ap.payroll_entry_id, ap.period_id, ap.amount,
			ap.balance_before, ap.balance_after, ap.applied_at, ap.applied_by
		FROM adjustment_applications ap
		JOIN pay_adjustments a ON a.id = ap.adjustment_id
		WHERE a.employee_id = $1 AND ap.period_id = $2
	`

	rows, err := q.Query(ctx, query, employeeID, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make(map[string]adjustment.Application)
	for rows.Next() {
		var app adjustment.Application
		err := rows.Scan(
			&app.ID, &app.AdjustmentID, &app.PayrollEntryID, &app.PeriodID, &app.Amount,
			&app.BalanceBefore, &app.BalanceAfter, &app.AppliedAt, &app.AppliedBy,
		)
		if err != nil {
			return nil, err
		}
		applications[app.AdjustmentID] = app
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// RecordApplication implements adjustment.AdjustmentRepository. The insert
// and the balance advance run as a statement pair inside one transaction;
// the guarded UPDATE makes an overdraw impossible even under concurrent
// recomputation.
func (r *adjustmentRepositoryImpl) RecordApplication(ctx context.Context, app adjustment.Application) (adjustment.Application, error) {
	var recorded adjustment.Application

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO adjustment_applications (
				id, adjustment_id, payroll_entry_id, period_id, amount,
				balance_before, balance_after, applied_at, applied_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, adjustment_id, payroll_entry_id, period_id, amount,
				balance_before, balance_after, applied_at, applied_by
		`
		err := tx.QueryRow(ctx, insert,
			app.ID, app.AdjustmentID, app.PayrollEntryID, app.PeriodID, app.Amount,
			app.BalanceBefore, app.BalanceAfter, app.AppliedAt, app.AppliedBy,
		).Scan(
			&recorded.ID, &recorded.AdjustmentID, &recorded.PayrollEntryID, &recorded.PeriodID,
			&recorded.Amount, &recorded.BalanceBefore, &recorded.BalanceAfter,
			&recorded.AppliedAt, &recorded.AppliedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return adjustment.ErrAlreadyApplied
			}
			return fmt.Errorf("failed to insert adjustment application: %w", err)
		}

		// Balance-tracked adjustments advance their counters; untracked ones
		// have nothing to update.
		if app.BalanceAfter == nil {
			return nil
		}

		update := `
			UPDATE pay_adjustments
			SET total_applied = total_applied + $1,
				remaining_balance = remaining_balance - $1,
				updated_at = NOW()
			WHERE id = $2 AND remaining_balance >= $1
			RETURNING id
		`
		var updatedID string
		err = tx.QueryRow(ctx, update, app.Amount, app.AdjustmentID).Scan(&updatedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return adjustment.ErrInsufficientBalance
			}
			return fmt.Errorf("failed to advance adjustment balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return adjustment.Application{}, err
	}

	return recorded, nil
}
