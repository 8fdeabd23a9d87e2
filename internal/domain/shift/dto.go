package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListFilter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

type ReportPeriod struct {
	Start time.Time
	End   time.Time
}

type ShiftResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	ClockInID    string          `json:"clock_in_id"`
	ClockOutID   string          `json:"clock_out_id"`
	StartedAt    time.Time       `json:"started_at"`
	EndedAt      time.Time       `json:"ended_at"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		ClockInID:    s.ClockInID,
		ClockOutID:   s.ClockOutID,
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		Amount:       s.Amount,
		CreatedAt:    s.CreatedAt,
	}
}

// ListShiftResponse reports the limit and offset the service actually
// applied after defaulting and capping.
type ListShiftResponse struct {
	Items  []ShiftResponse `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type EmployeeTotals struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	ShiftCount   int64           `json:"shift_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

type MonthlyReportResponse struct {
	Month      string           `json:"month"`
	Employees  []EmployeeTotals `json:"employees"`
	GrandTotal decimal.Decimal  `json:"grand_total"`
}
