package shift

import "context"

type ShiftRepository interface {
	// Create is only called by the clock engine inside its transaction.
	Create(ctx context.Context, newShift Shift) (Shift, error)
	List(ctx context.Context, filter ListFilter) ([]Shift, int64, error)
	// MonthlyTotals groups shifts started within [periodStart, periodEnd)
	// by employee, ordered by employee name.
	MonthlyTotals(ctx context.Context, filter ReportPeriod) ([]EmployeeTotals, error)
}
