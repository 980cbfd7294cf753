package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/bankvault/internal/errors"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestPostgreSQLStore_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT entry_value FROM kv_entries WHERE namespace = $1 AND entry_key = $2`)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(NamespaceBanking, "SECURE_BANKING_DATA").
			WillReturnRows(sqlmock.NewRows([]string{"entry_value"}).AddRow("payload"))

		value, err := NewPostgreSQLStore(db, NamespaceBanking).Get(ctx, "SECURE_BANKING_DATA")
		require.NoError(t, err)
		assert.Equal(t, "payload", value)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(NamespaceBanking, "missing").
			WillReturnRows(sqlmock.NewRows([]string{"entry_value"}))

		_, err := NewPostgreSQLStore(db, NamespaceBanking).Get(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(NamespaceBanking, "k").
			WillReturnError(errors.New("connection reset"))

		_, err := NewPostgreSQLStore(db, NamespaceBanking).Get(ctx, "k")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to get kv entry")
	})
}

func TestPostgreSQLStore_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_entries`)).
			WithArgs(NamespaceFallbackKeys, "FALLBACK_BANKING_KEY", "abc", fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))

		store := NewPostgreSQLStore(db, NamespaceFallbackKeys)
		store.now = func() time.Time { return fixedNow }
		require.NoError(t, store.Set(ctx, "FALLBACK_BANKING_KEY", "abc"))
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_entries`)).
			WillReturnError(errors.New("disk full"))

		err := NewPostgreSQLStore(db, NamespaceBanking).Set(ctx, "k", "v")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set kv entry")
	})
}

func TestPostgreSQLStore_Delete(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_entries WHERE namespace = $1 AND entry_key = $2`)).
		WithArgs(NamespaceBanking, "SECURE_TRANSACTION_DATA").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewPostgreSQLStore(db, NamespaceBanking)
	require.NoError(t, store.Delete(ctx, "SECURE_TRANSACTION_DATA"))
	assert.NoError(t, store.Close())
}

func TestMySQLStore_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT entry_value FROM kv_entries WHERE namespace = ? AND entry_key = ?`)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(NamespaceAuth, "BANKING_PIN_HASH").
			WillReturnRows(sqlmock.NewRows([]string{"entry_value"}).AddRow("$argon2id$..."))

		value, err := NewMySQLStore(db, NamespaceAuth).Get(ctx, "BANKING_PIN_HASH")
		require.NoError(t, err)
		assert.Equal(t, "$argon2id$...", value)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(NamespaceAuth, "missing").
			WillReturnError(sql.ErrNoRows)

		_, err := NewMySQLStore(db, NamespaceAuth).Get(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestMySQLStore_SetAndDelete(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`ON DUPLICATE KEY UPDATE`)).
		WithArgs(NamespaceBanking, "k", "v", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_entries`)).
		WithArgs(NamespaceBanking, "k").
		WillReturnError(errors.New("lock wait timeout"))

	store := NewMySQLStore(db, NamespaceBanking)
	store.now = func() time.Time { return fixedNow }

	require.NoError(t, store.Set(ctx, "k", "v"))

	err := store.Delete(ctx, "k")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete kv entry")
	assert.NoError(t, store.Close())
}
