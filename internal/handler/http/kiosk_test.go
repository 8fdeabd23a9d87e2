package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/clock"
	"github.com/clockdesk/timeclock-backend-go/internal/handler/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClockService struct {
	resp clock.ClockResponse
	err  error
}

func (s *stubClockService) ProcessClockAction(ctx context.Context, req clock.ClockRequest) (clock.ClockResponse, error) {
	if s.err != nil {
		return clock.ClockResponse{}, s.err
	}
	return s.resp, nil
}

func (s *stubClockService) HasOpenShift(ctx context.Context, employeeID string) (bool, error) {
	return false, nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestKioskClock(t *testing.T) {
	t.Parallel()

	handler := NewKioskHandler(&stubClockService{
		resp: clock.ClockResponse{
			Action:       clock.KindIn,
			EmployeeName: "Alice",
			Timestamp:    time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC),
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/kiosk/clock", strings.NewReader(`{"clock_code":"0101"}`))
	rec := httptest.NewRecorder()
	handler.Clock(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "IN", data["action"])
	assert.Equal(t, "Alice", data["employee_name"])
}

func TestKioskClock_InvalidCode(t *testing.T) {
	t.Parallel()

	handler := NewKioskHandler(&stubClockService{err: clock.ErrInvalidClockCode})

	req := httptest.NewRequest(http.MethodPost, "/kiosk/clock", strings.NewReader(`{"clock_code":"9999"}`))
	rec := httptest.NewRecorder()
	handler.Clock(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestKioskClock_MalformedCodeIsUnprocessable(t *testing.T) {
	t.Parallel()

	handler := NewKioskHandler(&stubClockService{})

	req := httptest.NewRequest(http.MethodPost, "/kiosk/clock", strings.NewReader(`{"clock_code":"12"}`))
	rec := httptest.NewRecorder()
	handler.Clock(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "clock_code")
}

func TestKioskClock_MalformedJSON(t *testing.T) {
	t.Parallel()

	handler := NewKioskHandler(&stubClockService{})

	req := httptest.NewRequest(http.MethodPost, "/kiosk/clock", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	handler.Clock(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKioskClock_UnexpectedErrorStaysGeneric(t *testing.T) {
	t.Parallel()

	handler := NewKioskHandler(&stubClockService{err: assert.AnError})

	req := httptest.NewRequest(http.MethodPost, "/kiosk/clock", strings.NewReader(`{"clock_code":"0101"}`))
	rec := httptest.NewRecorder()
	handler.Clock(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	// Internal error text must not leak to the kiosk.
	assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
}
