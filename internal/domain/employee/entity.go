package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a workforce record. The 4-digit clock code identifies the
// employee at the kiosk and is unique among active employees only, so a
// deactivated employee's code can be handed to a new hire.
type Employee struct {
	ID        string
	Name      string
	JobRole   string
	DailyRate decimal.Decimal
	ClockCode string
	IsActive  bool
	CreatedAt time.Time
}
