package employee

import (
	"time"

	"github.com/clockdesk/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name      string          `json:"name"`
	JobRole   string          `json:"job_role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	ClockCode string          `json:"clock_code"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.JobRole) {
		errs = append(errs, validator.ValidationError{Field: "job_role", Message: "job role is required"})
	}
	if !validator.IsValidRate(r.DailyRate) {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "daily rate must be non-negative with at most 2 decimal places"})
	}
	if !validator.IsValidClockCode(r.ClockCode) {
		errs = append(errs, validator.ValidationError{Field: "clock_code", Message: "clock code must be exactly 4 digits"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID        string           `json:"-"`
	Name      *string          `json:"name,omitempty"`
	JobRole   *string          `json:"job_role,omitempty"`
	DailyRate *decimal.Decimal `json:"daily_rate,omitempty"`
	ClockCode *string          `json:"clock_code,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.JobRole != nil && validator.IsEmpty(*r.JobRole) {
		errs = append(errs, validator.ValidationError{Field: "job_role", Message: "job role must not be empty"})
	}
	if r.DailyRate != nil && !validator.IsValidRate(*r.DailyRate) {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "daily rate must be non-negative with at most 2 decimal places"})
	}
	if r.ClockCode != nil && !validator.IsValidClockCode(*r.ClockCode) {
		errs = append(errs, validator.ValidationError{Field: "clock_code", Message: "clock code must be exactly 4 digits"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	IsActive *bool
	Limit    int
	Offset   int
}

type EmployeeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	JobRole   string          `json:"job_role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	ClockCode string          `json:"clock_code"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		JobRole:   e.JobRole,
		DailyRate: e.DailyRate,
		ClockCode: e.ClockCode,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}

// ListEmployeeResponse reports the limit and offset the service actually
// applied, which may differ from the requested ones after defaulting and
// capping.
type ListEmployeeResponse struct {
	Items  []EmployeeResponse `json:"items"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
