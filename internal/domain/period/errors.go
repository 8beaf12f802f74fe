package period

import "errors"

var (
	ErrPeriodNotFound      = errors.New("payroll period not found")
	ErrPeriodClosed        = errors.New("payroll period is closed")
	ErrPeriodAlreadyExists = errors.New("payroll period already exists for this cutoff")
)
