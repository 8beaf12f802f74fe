package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoCompensation   = errors.New("employee has no compensation profile")
)
