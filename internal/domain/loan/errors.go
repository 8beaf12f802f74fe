package loan

import "errors"

var (
	ErrLoanNotFound    = errors.New("employee loan not found")
	ErrOverpayment     = errors.New("payment amount exceeds remaining balance")
	ErrDuplicatePeriod = errors.New("loan payment already recorded for this period")
)
