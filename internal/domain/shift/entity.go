package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is a completed work period derived from a matched IN/OUT event pair.
// Rows are written exclusively by the clock engine, in the same transaction
// as the closing OUT event, and are immutable afterwards.
//
// Amount is the employee's daily rate captured at the moment the shift
// closed. Later rate changes never touch persisted shifts.
type Shift struct {
	ID           string
	EmployeeID   string
	ClockInID    string
	ClockOutID   string
	StartedAt    time.Time
	EndedAt      time.Time
	Amount       decimal.Decimal
	CreatedAt    time.Time
	EmployeeName string
}
