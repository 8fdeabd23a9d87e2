package clock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/clock"
	"github.com/clockdesk/timeclock-backend-go/internal/domain/employee"
	"github.com/clockdesk/timeclock-backend-go/internal/domain/shift"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/clockdesk/timeclock-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ClockServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	clock.ClockEventRepository
	shift.ShiftRepository
}

func NewClockService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	clockEventRepository clock.ClockEventRepository,
	shiftRepository shift.ShiftRepository,
) clock.ClockService {
	return &ClockServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		ClockEventRepository: clockEventRepository,
		ShiftRepository:      shiftRepository,
	}
}

// ProcessClockAction implements clock.ClockService.
//
// The whole read-decide-write sequence runs in one transaction. Resolving the
// employee takes a FOR UPDATE row lock, so concurrent punches for the same
// code queue behind each other: the second transaction re-reads the event log
// only after the first has committed, and therefore takes the opposite
// action. The event and its derived shift commit together or not at all.
func (s *ClockServiceImpl) ProcessClockAction(ctx context.Context, req clock.ClockRequest) (clock.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return clock.ClockResponse{}, err
	}

	var resp clock.ClockResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp, err := s.EmployeeRepository.GetActiveByClockCodeForUpdate(txCtx, req.ClockCode)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return clock.ErrInvalidClockCode
			}
			return fmt.Errorf("failed to resolve clock code: %w", err)
		}

		lastEvent, hasHistory, err := s.ClockEventRepository.GetLastByEmployee(txCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to read last event: %w", err)
		}

		nextKind := clock.NextKind(lastEvent.Kind, hasHistory)

		event, err := s.ClockEventRepository.Append(txCtx, clock.ClockEvent{
			EmployeeID: emp.ID,
			Kind:       nextKind,
			Timestamp:  time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to append event: %w", err)
		}

		if nextKind == clock.KindOut {
			// The shift amount is the rate on the row we hold locked, i.e.
			// the employee's rate at the moment the shift closes.
			_, err := s.ShiftRepository.Create(txCtx, shift.Shift{
				EmployeeID: emp.ID,
				ClockInID:  lastEvent.ID,
				ClockOutID: event.ID,
				StartedAt:  lastEvent.Timestamp,
				EndedAt:    event.Timestamp,
				Amount:     emp.DailyRate,
			})
			if err != nil {
				return fmt.Errorf("failed to create shift: %w", err)
			}
		}

		resp = clock.ClockResponse{
			Action:       nextKind,
			EmployeeName: emp.Name,
			Timestamp:    event.Timestamp,
		}
		return nil
	})

	if err != nil {
		return clock.ClockResponse{}, err
	}

	return resp, nil
}

// HasOpenShift implements clock.ClockService.
func (s *ClockServiceImpl) HasOpenShift(ctx context.Context, employeeID string) (bool, error) {
	lastEvent, hasHistory, err := s.ClockEventRepository.GetLastByEmployee(ctx, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to read last event: %w", err)
	}
	return hasHistory && lastEvent.Kind == clock.KindIn, nil
}
