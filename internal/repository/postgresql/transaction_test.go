package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*database.DB, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &database.DB{Pool: mock}, mock
}

func TestWithTransaction_Commits(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuerier(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	// Without a transaction in the context the pool answers queries.
	assert.Equal(t, db.Pool, GetQuerier(context.Background(), db))

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	txCtx := context.WithValue(context.Background(), "tx", tx)
	assert.Equal(t, tx, GetQuerier(txCtx, db))
}
