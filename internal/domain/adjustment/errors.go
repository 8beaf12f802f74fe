package adjustment

import "errors"

var (
	ErrAdjustmentNotFound  = errors.New("pay adjustment not found")
	ErrAlreadyApplied      = errors.New("adjustment already applied to this period")
	ErrInsufficientBalance = errors.New("application amount exceeds remaining balance")
)
