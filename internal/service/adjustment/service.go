package adjustment

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/adjustment"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/employee"
)

type AdjustmentServiceImpl struct {
	adjustment.AdjustmentRepository
	employee.EmployeeRepository
}

func NewAdjustmentService(adjustmentRepo adjustment.AdjustmentRepository, employeeRepo employee.EmployeeRepository) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{
		AdjustmentRepository: adjustmentRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// ListByEmployee implements adjustment.AdjustmentService. The employee
// lookup scopes the listing to the caller's company.
func (s *AdjustmentServiceImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]adjustment.AdjustmentResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	adjustments, err := s.AdjustmentRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		responses = append(responses, toAdjustmentResponse(a))
	}
	return responses, nil
}

func toAdjustmentResponse(a adjustment.PayAdjustment) adjustment.AdjustmentResponse {
	resp := adjustment.AdjustmentResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		Category:       string(a.Category),
		TypeCode:       a.Type.Code,
		TypeName:       a.Type.Name,
		Amount:         a.Amount.StringFixed(2),
		Status:         string(a.Status),
		TargetPeriodID: a.TargetPeriodID,
		Interval:       string(a.Interval),
	}

	if a.RecurringStart != nil {
		v := a.RecurringStart.Format("2006-01-02")
		resp.RecurringStart = &v
	}
	if a.RecurringEnd != nil {
		v := a.RecurringEnd.Format("2006-01-02")
		resp.RecurringEnd = &v
	}
	resp.TotalAmount = moneyPtr(a.TotalAmount)
	resp.TotalApplied = moneyPtr(a.TotalApplied)
	resp.RemainingBalance = moneyPtr(a.RemainingBalance)

	return resp
}

func moneyPtr(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := v.StringFixed(2)
	return &s
}
