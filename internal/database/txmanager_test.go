package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func TestSQLTxManager_CommitsPinWrites(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE kv_entries").WithArgs("auth", "PIN_HASH").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM kv_entries").WithArgs("auth", "PIN_ATTEMPTS").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
		q := GetTx(ctx, db)
		assert.IsType(t, &sql.Tx{}, q)
		if _, err := q.ExecContext(ctx, "UPDATE kv_entries SET entry_value = 'h' WHERE namespace = $1 AND entry_key = $2", "auth", "PIN_HASH"); err != nil {
			return err
		}
		_, err := q.ExecContext(ctx, "DELETE FROM kv_entries WHERE namespace = $1 AND entry_key = $2", "auth", "PIN_ATTEMPTS")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTxManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := NewTxManager(db).WithTx(context.Background(), func(context.Context) error {
		return assert.AnError
	})

	assert.Equal(t, assert.AnError, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTxManager_RollbackErrorKeepsCause(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection reset"))

	err := NewTxManager(db).WithTx(context.Background(), func(context.Context) error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "rollback failed: connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTxManager_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := NewTxManager(db).WithTx(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	assert.EqualError(t, err, "failed to begin transaction: connection refused")
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTxManager_CommitError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := NewTxManager(db).WithTx(context.Background(), func(context.Context) error {
		return nil
	})

	assert.EqualError(t, err, "failed to commit transaction: serialization failure")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTxManager_NestedCallJoinsOuter(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	txManager := NewTxManager(db)
	err := txManager.WithTx(context.Background(), func(outer context.Context) error {
		outerTx := GetTx(outer, db)
		return txManager.WithTx(outer, func(inner context.Context) error {
			assert.Same(t, outerTx, GetTx(inner, db))
			return nil
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTxManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = NewTxManager(db).WithTx(context.Background(), func(context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTx_OutsideTransaction(t *testing.T) {
	db, _ := newMockDB(t)

	assert.Equal(t, db, GetTx(context.Background(), db))
}

func TestPassthroughTxManager(t *testing.T) {
	txManager := NewPassthroughTxManager()

	called := false
	err := txManager.WithTx(context.Background(), func(inner context.Context) error {
		called = true
		assert.Nil(t, inner.Value(txKey{}))
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	err = txManager.WithTx(context.Background(), func(context.Context) error { return assert.AnError })
	assert.Equal(t, assert.AnError, err)
}
