package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/clock"
	"github.com/clockdesk/timeclock-backend-go/internal/handler/http/response"
)

type KioskHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
}

type kioskHandlerImpl struct {
	clockService clock.ClockService
}

func NewKioskHandler(clockService clock.ClockService) KioskHandler {
	return &kioskHandlerImpl{clockService: clockService}
}

// Clock implements KioskHandler. The kiosk endpoint is public: the 4-digit
// clock code is the only credential, and the engine decides whether the
// punch is an IN or an OUT.
func (h *kioskHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req clock.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.clockService.ProcessClockAction(r.Context(), req)
	if err != nil {
		// Punch attempts with bad codes are routine, not server trouble
		slog.Info("Clock action rejected", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
