package loan

import "context"

// LoanService is the read surface exposed to handlers; loans are
// administered upstream and amortized by the payroll engine.
type LoanService interface {
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]LoanResponse, error)
}
