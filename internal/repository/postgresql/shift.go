package postgresql

import (
	"context"
	"fmt"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/shift"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository. Only the clock engine calls this,
// inside the transaction that also appends the closing OUT event.
func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to generate shift ID: %w", err)
	}
	newShift.ID = id.String()

	query := `
		INSERT INTO shifts (id, employee_id, clock_in_id, clock_out_id, started_at, ended_at, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		newShift.ID,
		newShift.EmployeeID,
		newShift.ClockInID,
		newShift.ClockOutID,
		newShift.StartedAt,
		newShift.EndedAt,
		newShift.Amount,
	).Scan(&newShift.CreatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, filter shift.ListFilter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND s.started_at >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND s.ended_at <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM shifts s WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT s.id, s.employee_id, s.clock_in_id, s.clock_out_id,
			   s.started_at, s.ended_at, s.amount, s.created_at,
			   e.name AS employee_name
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.started_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.ClockInID, &s.ClockOutID,
			&s.StartedAt, &s.EndedAt, &s.Amount, &s.CreatedAt,
			&s.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read shifts: %w", err)
	}

	return shifts, total, nil
}

// MonthlyTotals implements shift.ShiftRepository.
func (r *shiftRepository) MonthlyTotals(ctx context.Context, period shift.ReportPeriod) ([]shift.EmployeeTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id AS employee_id,
			   e.name AS employee_name,
			   COUNT(s.id) AS shift_count,
			   COALESCE(SUM(s.amount), 0) AS total_amount
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.started_at >= $1
		  AND s.started_at < $2
		GROUP BY e.id, e.name
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []shift.EmployeeTotals
	for rows.Next() {
		var t shift.EmployeeTotals
		if err := rows.Scan(&t.EmployeeID, &t.EmployeeName, &t.ShiftCount, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly totals: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly totals: %w", err)
	}

	return totals, nil
}
