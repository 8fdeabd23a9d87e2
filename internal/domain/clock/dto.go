package clock

import (
	"time"

	"github.com/clockdesk/timeclock-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	ClockCode string `json:"clock_code"`
}

func (r ClockRequest) Validate() error {
	if !validator.IsValidClockCode(r.ClockCode) {
		return validator.ValidationErrors{
			{Field: "clock_code", Message: "clock code must be exactly 4 digits"},
		}
	}
	return nil
}

type ClockResponse struct {
	Action       EventKind `json:"action"`
	EmployeeName string    `json:"employee_name"`
	Timestamp    time.Time `json:"timestamp"`
}
