package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/shift"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShiftService struct {
	listFilter shift.ListFilter
	listResp   shift.ListShiftResponse
	reportErr  error
	lastYear   int
	lastMonth  int
}

func (s *stubShiftService) ListShifts(ctx context.Context, filter shift.ListFilter) (shift.ListShiftResponse, error) {
	s.listFilter = filter
	return s.listResp, nil
}

func (s *stubShiftService) MonthlyReport(ctx context.Context, year, month int) (shift.MonthlyReportResponse, error) {
	s.lastYear, s.lastMonth = year, month
	if s.reportErr != nil {
		return shift.MonthlyReportResponse{}, s.reportErr
	}
	return shift.MonthlyReportResponse{
		Month:      "2026-02",
		Employees:  []shift.EmployeeTotals{},
		GrandTotal: decimal.Zero,
	}, nil
}

func newShiftRouter(svc shift.ShiftService) http.Handler {
	h := NewShiftHandler(svc)
	r := chi.NewRouter()
	r.Get("/shifts", h.List)
	r.Get("/shifts/report/monthly", h.MonthlyReport)
	return r
}

func TestShiftList_ParsesQuery(t *testing.T) {
	t.Parallel()

	stub := &stubShiftService{}
	router := newShiftRouter(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/shifts?employee_id=emp-1&start_date=2026-02-01T00:00:00Z&end_date=2026-03-01T00:00:00Z&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.listFilter.EmployeeID)
	assert.Equal(t, "emp-1", *stub.listFilter.EmployeeID)
	require.NotNil(t, stub.listFilter.StartDate)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), stub.listFilter.StartDate.UTC())
	assert.Equal(t, 10, stub.listFilter.Limit)
}

func TestShiftList_BadDate(t *testing.T) {
	t.Parallel()

	router := newShiftRouter(&stubShiftService{})

	req := httptest.NewRequest(http.MethodGet, "/shifts?start_date=02-01-2026", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftMonthlyReport(t *testing.T) {
	t.Parallel()

	stub := &stubShiftService{}
	router := newShiftRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/shifts/report/monthly?year=2026&month=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2026, stub.lastYear)
	assert.Equal(t, 2, stub.lastMonth)
}

func TestShiftMonthlyReport_MissingParams(t *testing.T) {
	t.Parallel()

	router := newShiftRouter(&stubShiftService{})

	req := httptest.NewRequest(http.MethodGet, "/shifts/report/monthly", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftMonthlyReport_InvalidPeriod(t *testing.T) {
	t.Parallel()

	router := newShiftRouter(&stubShiftService{reportErr: shift.ErrInvalidReportPeriod})

	req := httptest.NewRequest(http.MethodGet, "/shifts/report/monthly?year=2026&month=13", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftList_MetaReportsAppliedPagination(t *testing.T) {
	t.Parallel()

	stub := &stubShiftService{listResp: shift.ListShiftResponse{
		Items: []shift.ShiftResponse{},
		Total: 2,
		Limit: 50,
	}}
	router := newShiftRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/shifts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 50, resp.Meta.Limit)
	assert.Equal(t, 0, resp.Meta.Offset)
	assert.Equal(t, int64(2), resp.Meta.TotalItems)
}
