package adjustment

import "context"

// AdjustmentService is the read surface exposed to handlers; adjustments
// are administered upstream and only consumed here.
type AdjustmentService interface {
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]AdjustmentResponse, error)
}
