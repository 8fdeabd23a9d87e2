package employee

import "context"

// EmployeeService defines business logic for directory operations
type EmployeeService interface {
	// CreateEmployee registers a new employee (admin only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists employees with an optional active filter
	ListEmployees(ctx context.Context, filter ListFilter) (ListEmployeeResponse, error)

	// UpdateEmployee applies a partial update; clock code changes are
	// rejected while the employee has an open shift
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee flips the active flag off; the only removal there is
	DeactivateEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}
