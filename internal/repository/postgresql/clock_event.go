package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/clock"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) clock.ClockEventRepository {
	return &clockEventRepository{db: db}
}

// Append implements clock.ClockEventRepository. time_entries is append-only:
// this is the only statement in the codebase that touches the table beyond
// SELECTs, and the schema has no UPDATE path at all.
func (r *clockEventRepository) Append(ctx context.Context, event clock.ClockEvent) (clock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return clock.ClockEvent{}, fmt.Errorf("failed to generate event ID: %w", err)
	}
	event.ID = id.String()

	query := `
		INSERT INTO time_entries (id, employee_id, kind, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		string(event.Kind),
		event.Timestamp,
	).Scan(&event.CreatedAt)

	if err != nil {
		return clock.ClockEvent{}, fmt.Errorf("failed to append clock event: %w", err)
	}

	return event, nil
}

// GetLastByEmployee implements clock.ClockEventRepository.
func (r *clockEventRepository) GetLastByEmployee(ctx context.Context, employeeID string) (clock.ClockEvent, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, timestamp, created_at
		FROM time_entries
		WHERE employee_id = $1
		ORDER BY timestamp DESC, created_at DESC
		LIMIT 1
	`

	var e clock.ClockEvent
	var kind string
	err := q.QueryRow(ctx, query, employeeID).Scan(&e.ID, &e.EmployeeID, &kind, &e.Timestamp, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return clock.ClockEvent{}, false, nil
		}
		return clock.ClockEvent{}, false, fmt.Errorf("failed to get last clock event: %w", err)
	}
	e.Kind = clock.EventKind(kind)

	return e, true, nil
}
