package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreate_TranslatesUniqueViolation(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(pgxmock.AnyArg(), "Alice", "Barista", decimal.RequireFromString("120.00"), "0101", true).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), employee.Employee{
		Name:      "Alice",
		JobRole:   "Barista",
		DailyRate: decimal.RequireFromString("120.00"),
		ClockCode: "0101",
		IsActive:  true,
	})

	assert.ErrorIs(t, err, employee.ErrClockCodeExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeGetByID_NotFound(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery("FROM employees").
		WithArgs("emp-404").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "emp-404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeUpdate_NoRowsMeansNotFound(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectExec("UPDATE employees").
		WithArgs("Alice", "Barista", decimal.RequireFromString("120.00"), "0101", true, "emp-404").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := repo.Update(context.Background(), employee.Employee{
		ID:        "emp-404",
		Name:      "Alice",
		JobRole:   "Barista",
		DailyRate: decimal.RequireFromString("120.00"),
		ClockCode: "0101",
		IsActive:  true,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveClockCodeExists_ExcludesGivenEmployee(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("0101", "emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ActiveClockCodeExists(context.Background(), "0101", "emp-1")

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeList_FiltersActive(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("FROM employees").
		WithArgs(true, 50, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "job_role", "daily_rate", "clock_code", "is_active", "created_at"}).
			AddRow("emp-1", "Alice", "Barista", decimal.RequireFromString("120.00"), "0101", true, time.Now().UTC()))

	active := true
	employees, total, err := repo.List(context.Background(), employee.ListFilter{IsActive: &active, Limit: 50})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, employees, 1)
	assert.Equal(t, "Alice", employees[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByClockCodeForUpdate_TakesRowLock(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	// The row lock is what serializes concurrent punches for one employee,
	// so the query must carry both the active filter and FOR UPDATE.
	mock.ExpectQuery(`(?s)FROM employees.*is_active = TRUE.*FOR UPDATE`).
		WithArgs("0101").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "job_role", "daily_rate", "clock_code", "is_active", "created_at"}).
			AddRow("emp-1", "Alice", "Barista", decimal.RequireFromString("120.00"), "0101", true, time.Now().UTC()))

	e, err := repo.GetActiveByClockCodeForUpdate(context.Background(), "0101")

	require.NoError(t, err)
	assert.Equal(t, "emp-1", e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUpdate_TakesRowLock(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(`(?s)FROM employees.*FOR UPDATE`).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "job_role", "daily_rate", "clock_code", "is_active", "created_at"}).
			AddRow("emp-1", "Alice", "Barista", decimal.RequireFromString("120.00"), "0101", true, time.Now().UTC()))

	e, err := repo.GetByIDForUpdate(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "emp-1", e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
