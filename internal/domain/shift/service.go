package shift

import "context"

// ShiftService is read-only: shifts come into existence through the clock
// engine and are reported on here.
type ShiftService interface {
	ListShifts(ctx context.Context, filter ListFilter) (ListShiftResponse, error)

	// MonthlyReport sums shifts whose start falls within the given month,
	// grouped by employee. Employees with no shifts are omitted.
	MonthlyReport(ctx context.Context, year, month int) (MonthlyReportResponse, error)
}
