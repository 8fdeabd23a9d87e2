package response

import (
	"errors"
	"net/http"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/auth"
	"github.com/clockdesk/timeclock-backend-go/internal/domain/clock"
	"github.com/clockdesk/timeclock-backend-go/internal/domain/employee"
	"github.com/clockdesk/timeclock-backend-go/internal/domain/shift"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is a
// server fault and comes back as a generic 500: storage error text never
// reaches a client.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Kiosk errors. Unknown and inactive codes share one message on purpose.
	case errors.Is(err, clock.ErrInvalidClockCode):
		BadRequest(w, "Invalid clock code or employee is inactive", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrClockCodeExists):
		Conflict(w, "Clock code already in use by an active employee")
	case errors.Is(err, employee.ErrAlreadyInactive):
		BadRequest(w, "Employee is already inactive", nil)
	case errors.Is(err, employee.ErrOpenShift):
		BadRequest(w, "Employee has an open shift and must clock out first", nil)

	// Report errors
	case errors.Is(err, shift.ErrInvalidReportPeriod):
		BadRequest(w, "Report period is out of range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
