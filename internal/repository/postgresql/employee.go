package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.company_id, e.employee_code, e.full_name, e.work_location_id,
	e.hire_date, e.status, e.created_at, e.updated_at,
	c.id, c.employee_id, c.basic_pay, c.pay_type, c.currency, c.effective_date,
	c.created_at, c.updated_at
`

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN compensation_profiles c ON c.employee_id = e.id
		WHERE e.id = $1 AND e.company_id = $2
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	return emp, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN compensation_profiles c ON c.employee_id = e.id
		WHERE e.company_id = $1 AND e.status = $2
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, companyID, employee.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp  employee.Employee
		comp employee.CompensationProfile

		// compensation columns from the LEFT JOIN, nullable
		compID, compEmployeeID, compPayType, compCurrency *string
		compBasicPay                                      decimal.NullDecimal
		compEffectiveDate, compCreatedAt, compUpdatedAt   *time.Time
	)

	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName, &emp.WorkLocationID,
		&emp.HireDate, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
		&compID, &compEmployeeID, &compBasicPay, &compPayType, &compCurrency, &compEffectiveDate,
		&compCreatedAt, &compUpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if compID != nil {
		comp.ID = *compID
		comp.EmployeeID = *compEmployeeID
		comp.BasicPay = compBasicPay.Decimal
		comp.PayType = employee.PayType(*compPayType)
		comp.Currency = *compCurrency
		if compEffectiveDate != nil {
			comp.EffectiveDate = *compEffectiveDate
		}
		if compCreatedAt != nil {
			comp.CreatedAt = *compCreatedAt
		}
		if compUpdatedAt != nil {
			comp.UpdatedAt = *compUpdatedAt
		}
		emp.Compensation = &comp
	}

	return emp, nil
}
