package payroll

import "errors"

var (
	ErrEntryNotFound        = errors.New("payroll entry not found")
	ErrEntryNotRecomputable = errors.New("payroll entry can no longer be recomputed")
	ErrEntryAlreadyExists   = errors.New("payroll entry already exists for this period")
	ErrInvalidTransition    = errors.New("invalid payroll entry status transition")
	ErrEntryImmutable       = errors.New("paid payroll entry cannot be modified")
)
