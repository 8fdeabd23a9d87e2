package clock

import "context"

type ClockEventRepository interface {
	// Append inserts a new event. There is intentionally no update or
	// delete counterpart.
	Append(ctx context.Context, event ClockEvent) (ClockEvent, error)
	// GetLastByEmployee returns the employee's most recent event by
	// timestamp, or found=false when the employee has no history.
	GetLastByEmployee(ctx context.Context, employeeID string) (ClockEvent, bool, error)
}
