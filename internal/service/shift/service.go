package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	minReportYear = 2000
	maxReportYear = 2100
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(shiftRepository shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{ShiftRepository: shiftRepository}
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filter shift.ListFilter) (shift.ListShiftResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	shifts, total, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return shift.ListShiftResponse{}, err
	}

	items := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		items = append(items, shift.ToResponse(sh))
	}

	return shift.ListShiftResponse{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// MonthlyReport implements shift.ShiftService.
func (s *ShiftServiceImpl) MonthlyReport(ctx context.Context, year, month int) (shift.MonthlyReportResponse, error) {
	if month < 1 || month > 12 || year < minReportYear || year > maxReportYear {
		return shift.MonthlyReportResponse{}, shift.ErrInvalidReportPeriod
	}

	period := MonthPeriod(year, month)

	totals, err := s.ShiftRepository.MonthlyTotals(ctx, period)
	if err != nil {
		return shift.MonthlyReportResponse{}, err
	}

	grandTotal := decimal.Zero
	for _, t := range totals {
		grandTotal = grandTotal.Add(t.TotalAmount)
	}
	if totals == nil {
		totals = []shift.EmployeeTotals{}
	}

	return shift.MonthlyReportResponse{
		Month:      fmt.Sprintf("%04d-%02d", year, month),
		Employees:  totals,
		GrandTotal: grandTotal,
	}, nil
}

// MonthPeriod returns the half-open interval [first instant of the month,
// first instant of the next month) in UTC. AddDate handles the December to
// January rollover.
func MonthPeriod(year, month int) shift.ReportPeriod {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return shift.ReportPeriod{Start: start, End: start.AddDate(0, 1, 0)}
}
