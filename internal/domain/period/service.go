package period

import "context"

// PeriodService manages the administrative period lifecycle. Computation
// against a period lives in the payroll service.
type PeriodService interface {
	Create(ctx context.Context, req CreatePeriodRequest, companyID string) (PeriodResponse, error)
	GetByID(ctx context.Context, id string, companyID string) (PeriodResponse, error)
	List(ctx context.Context, companyID string) ([]PeriodResponse, error)
}
