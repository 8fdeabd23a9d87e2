package clock

import "context"

// ClockService is the transition engine behind the kiosk endpoint.
type ClockService interface {
	// ProcessClockAction resolves the code, alternates IN/OUT based on the
	// employee's last event, appends the event and, when the action closes a
	// work period, derives the shift record in the same transaction.
	ProcessClockAction(ctx context.Context, req ClockRequest) (ClockResponse, error)

	// HasOpenShift reports whether the employee's latest event is an IN.
	// The directory consults it before deactivations and code changes.
	HasOpenShift(ctx context.Context, employeeID string) (bool, error)
}
