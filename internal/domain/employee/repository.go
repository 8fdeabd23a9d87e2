package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the employee row for the rest of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	// GetActiveByClockCodeForUpdate resolves an active employee by clock
	// code and locks the row. Returns ErrEmployeeNotFound for unknown and
	// inactive codes alike.
	GetActiveByClockCodeForUpdate(ctx context.Context, clockCode string) (Employee, error)
	// ActiveClockCodeExists reports whether an active employee other than
	// excludeID holds clockCode. Pass an empty excludeID to check all.
	ActiveClockCodeExists(ctx context.Context, clockCode string, excludeID string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
}
