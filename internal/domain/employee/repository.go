package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// All methods include companyID to prevent cross-company data access.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	// GetActiveByCompanyID returns active employees with their compensation
	// profile joined when one exists.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
