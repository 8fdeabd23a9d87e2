package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/employee"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.Name, &e.JobRole, &e.DailyRate, &e.ClockCode, &e.IsActive, &e.CreatedAt)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, job_role, daily_rate, clock_code, is_active, created_at
		FROM employees
		WHERE id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// GetByIDForUpdate implements employee.EmployeeRepository.
func (r *employeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, job_role, daily_rate, clock_code, is_active, created_at
		FROM employees
		WHERE id = $1
		FOR UPDATE
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to lock employee by ID: %w", err)
	}

	return e, nil
}

// GetActiveByClockCodeForUpdate implements employee.EmployeeRepository.
// The row lock serializes concurrent punches for the same employee: a second
// transaction blocks here until the first commits, then reads the new state.
func (r *employeeRepository) GetActiveByClockCodeForUpdate(ctx context.Context, clockCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, job_role, daily_rate, clock_code, is_active, created_at
		FROM employees
		WHERE clock_code = $1
		  AND is_active = TRUE
		FOR UPDATE
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, clockCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to resolve employee by clock code: %w", err)
	}

	return e, nil
}

// ActiveClockCodeExists implements employee.EmployeeRepository.
func (r *employeeRepository) ActiveClockCodeExists(ctx context.Context, clockCode string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM employees
			WHERE clock_code = $1
			  AND is_active = TRUE
	`
	args := []interface{}{clockCode}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}
	query += `)`

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check clock code: %w", err)
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee ID: %w", err)
	}
	newEmployee.ID = id.String()

	query := `
		INSERT INTO employees (id, name, job_role, daily_rate, clock_code, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.Name,
		newEmployee.JobRole,
		newEmployee.DailyRate,
		newEmployee.ClockCode,
		newEmployee.IsActive,
	).Scan(&newEmployee.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return employee.Employee{}, employee.ErrClockCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, job_role = $2, daily_rate = $3, clock_code = $4, is_active = $5
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		updated.Name,
		updated.JobRole,
		updated.DailyRate,
		updated.ClockCode,
		updated.IsActive,
		updated.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return employee.Employee{}, employee.ErrClockCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	return updated, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM employees WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, name, job_role, daily_rate, clock_code, is_active, created_at
		FROM employees
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.JobRole, &e.DailyRate, &e.ClockCode, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, total, nil
}
