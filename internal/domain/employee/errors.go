package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrClockCodeExists  = errors.New("clock code already in use by an active employee")
	ErrAlreadyInactive  = errors.New("employee is already inactive")
	ErrOpenShift        = errors.New("employee has an open shift")
)
