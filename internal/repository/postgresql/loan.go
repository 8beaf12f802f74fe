package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
)

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

const loanColumns = `
	id, employee_id, company_id, name, total_amount, term_months, monthly_deduction,
	total_paid, remaining_balance, start_date, status, created_at, updated_at
`

// ListDeductibleByEmployee implements loan.LoanRepository.
func (r *loanRepositoryImpl) ListDeductibleByEmployee(ctx context.Context, employeeID string) ([]loan.EmployeeLoan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM employee_loans
		WHERE employee_id = $1 AND status = $2 AND remaining_balance > 0
		ORDER BY start_date
	`
	return r.list(ctx, query, employeeID, loan.StatusActive)
}

// ListByEmployee implements loan.LoanRepository.
func (r *loanRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]loan.EmployeeLoan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM employee_loans
		WHERE employee_id = $1
		ORDER BY start_date
	`
	return r.list(ctx, query, employeeID)
}

func (r *loanRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]loan.EmployeeLoan, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []loan.EmployeeLoan
	for rows.Next() {
		var l loan.EmployeeLoan
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.CompanyID, &l.Name, &l.TotalAmount, &l.TermMonths,
			&l.MonthlyDeduction, &l.TotalPaid, &l.RemainingBalance, &l.StartDate, &l.Status,
			&l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}

// PaymentsForPeriod implements loan.LoanRepository.
func (r *loanRepositoryImpl) PaymentsForPeriod(ctx context.Context, employeeID, periodID string) (map[string]loan.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.loan_id, p.payroll_entry_id, p.period_id, p.amount,
			p.balance_before, p.balance_after, p.paid_at
		FROM loan_payments p
		JOIN employee_loans l ON l.id = p.loan_id
		WHERE l.employee_id = $1 AND p.period_id = $2
	`

	rows, err := q.Query(ctx, query, employeeID, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make(map[string]loan.Payment)
	for rows.Next() {
		var p loan.Payment
		err := rows.Scan(
			&p.ID, &p.LoanID, &p.PayrollEntryID, &p.PeriodID, &p.Amount,
			&p.BalanceBefore, &p.BalanceAfter, &p.PaidAt,
		)
		if err != nil {
			return nil, err
		}
		payments[p.LoanID] = p
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// RecordPayment implements loan.LoanRepository. Insert and balance advance
// run as one transaction; the guarded UPDATE rejects overpayment and a
// second statement flips a fully paid loan to completed.
func (r *loanRepositoryImpl) RecordPayment(ctx context.Context, payment loan.Payment) (loan.Payment, error) {
	var recorded loan.Payment

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO loan_payments (
				id, loan_id, payroll_entry_id, period_id, amount, balance_before, balance_after, paid_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, loan_id, payroll_entry_id, period_id, amount, balance_before, balance_after, paid_at
		`
		err := tx.QueryRow(ctx, insert,
			payment.ID, payment.LoanID, payment.PayrollEntryID, payment.PeriodID,
			payment.Amount, payment.BalanceBefore, payment.BalanceAfter, payment.PaidAt,
		).Scan(
			&recorded.ID, &recorded.LoanID, &recorded.PayrollEntryID, &recorded.PeriodID,
			&recorded.Amount, &recorded.BalanceBefore, &recorded.BalanceAfter, &recorded.PaidAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return loan.ErrDuplicatePeriod
			}
			return fmt.Errorf("failed to insert loan payment: %w", err)
		}

		update := `
			UPDATE employee_loans
			SET total_paid = total_paid + $1,
				remaining_balance = remaining_balance - $1,
				status = CASE WHEN remaining_balance - $1 <= 0 THEN $2 ELSE status END,
				updated_at = NOW()
			WHERE id = $3 AND remaining_balance >= $1
			RETURNING id
		`
		var updatedID string
		err = tx.QueryRow(ctx, update, payment.Amount, loan.StatusCompleted, payment.LoanID).Scan(&updatedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return loan.ErrOverpayment
			}
			return fmt.Errorf("failed to advance loan balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return loan.Payment{}, err
	}

	return recorded, nil
}
