package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/validator"
)

func validCreateRequest() CreatePeriodRequest {
	return CreatePeriodRequest{
		CutoffStart:  "2026-01-16",
		CutoffEnd:    "2026-01-31",
		PayDate:      "2026-02-05",
		PeriodNumber: 2,
		CycleType:    "semi_monthly",
	}
}

func TestCreatePeriodRequestValid(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreatePeriodRequestInvalidDates(t *testing.T) {
	req := validCreateRequest()
	req.CutoffStart = "01/16/2026"
	req.PayDate = "not-a-date"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "cutoff_start")
	assert.Contains(t, fields, "pay_date")
	assert.NotContains(t, fields, "cutoff_end")
}

func TestCreatePeriodRequestEndBeforeStart(t *testing.T) {
	req := validCreateRequest()
	req.CutoffStart = "2026-01-31"
	req.CutoffEnd = "2026-01-16"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "cutoff_end")
}

func TestCreatePeriodRequestUnknownCycleType(t *testing.T) {
	req := validCreateRequest()
	req.CycleType = "weekly"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "cycle_type")
}

func TestCreatePeriodRequestPeriodNumberAtLeastOne(t *testing.T) {
	req := validCreateRequest()
	req.PeriodNumber = 0

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "period_number")
}
