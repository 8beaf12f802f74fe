package loan

import (
	"context"

	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/loan"
)

type LoanServiceImpl struct {
	loan.LoanRepository
	employee.EmployeeRepository
}

func NewLoanService(loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository) loan.LoanService {
	return &LoanServiceImpl{
		LoanRepository:     loanRepo,
		EmployeeRepository: employeeRepo,
	}
}

// ListByEmployee implements loan.LoanService. The employee lookup scopes
// the listing to the caller's company.
func (s *LoanServiceImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]loan.LoanResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	loans, err := s.LoanRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		responses = append(responses, toLoanResponse(l))
	}
	return responses, nil
}

func toLoanResponse(l loan.EmployeeLoan) loan.LoanResponse {
	return loan.LoanResponse{
		ID:               l.ID,
		EmployeeID:       l.EmployeeID,
		Name:             l.Name,
		TotalAmount:      l.TotalAmount.StringFixed(2),
		TermMonths:       l.TermMonths,
		MonthlyDeduction: l.MonthlyDeduction.StringFixed(2),
		TotalPaid:        l.TotalPaid.StringFixed(2),
		RemainingBalance: l.RemainingBalance.StringFixed(2),
		StartDate:        l.StartDate.Format("2006-01-02"),
		Status:           string(l.Status),
	}
}
