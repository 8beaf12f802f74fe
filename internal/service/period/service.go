package period

import (
	"context"
	"time"

	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

type PeriodServiceImpl struct {
	period.PeriodRepository
}

func NewPeriodService(periodRepo period.PeriodRepository) period.PeriodService {
	return &PeriodServiceImpl{PeriodRepository: periodRepo}
}

// Create implements period.PeriodService.
func (s *PeriodServiceImpl) Create(ctx context.Context, req period.CreatePeriodRequest, companyID string) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	// Validate() already proved the dates parse.
	cutoffStart, _ := time.Parse("2006-01-02", req.CutoffStart)
	cutoffEnd, _ := time.Parse("2006-01-02", req.CutoffEnd)
	payDate, _ := time.Parse("2006-01-02", req.PayDate)

	created, err := s.PeriodRepository.Create(ctx, period.PayrollPeriod{
		CompanyID:    companyID,
		CutoffStart:  cutoffStart,
		CutoffEnd:    cutoffEnd,
		PayDate:      payDate,
		PeriodNumber: req.PeriodNumber,
		CycleType:    period.CycleType(req.CycleType),
	})
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return toPeriodResponse(created), nil
}

// GetByID implements period.PeriodService.
func (s *PeriodServiceImpl) GetByID(ctx context.Context, id string, companyID string) (period.PeriodResponse, error) {
	p, err := s.PeriodRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	return toPeriodResponse(p), nil
}

// List implements period.PeriodService.
func (s *PeriodServiceImpl) List(ctx context.Context, companyID string) ([]period.PeriodResponse, error) {
	periods, err := s.PeriodRepository.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, toPeriodResponse(p))
	}
	return responses, nil
}

func toPeriodResponse(p period.PayrollPeriod) period.PeriodResponse {
	return period.PeriodResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		CutoffStart:     p.CutoffStart.Format("2006-01-02"),
		CutoffEnd:       p.CutoffEnd.Format("2006-01-02"),
		PayDate:         p.PayDate.Format("2006-01-02"),
		PeriodNumber:    p.PeriodNumber,
		CycleType:       string(p.CycleType),
		Status:          string(p.Status),
		TotalEmployees:  p.TotalEmployees,
		TotalGross:      p.TotalGross.StringFixed(2),
		TotalDeductions: p.TotalDeductions.StringFixed(2),
		TotalNet:        p.TotalNet.StringFixed(2),
	}
}
