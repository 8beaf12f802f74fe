package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/suweldo-hq/payroll-engine-go/internal/domain/period"
)

// PeriodJobs contains period-lifecycle cron jobs
type PeriodJobs struct {
	periodRepo period.PeriodRepository
}

// NewPeriodJobs creates period cron jobs
func NewPeriodJobs(periodRepo period.PeriodRepository) *PeriodJobs {
	return &PeriodJobs{periodRepo: periodRepo}
}

// RegisterJobs registers all period-related cron jobs
func (j *PeriodJobs) RegisterJobs(scheduler *Scheduler) {
	// Close open periods whose pay date has passed, hourly
	scheduler.AddJob(
		"close_ended_periods",
		1*time.Hour,
		j.CloseEndedPeriods,
	)
}

// CloseEndedPeriods closes every open period whose pay date has passed.
// A closed period rejects further computation requests.
func (j *PeriodJobs) CloseEndedPeriods(ctx context.Context) error {
	closed, err := j.periodRepo.CloseEnded(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("Closed ended payroll periods", "count", closed)
	}
	return nil
}
