package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/bankvault/internal/database"
	apperrors "github.com/allisson/bankvault/internal/errors"
)

// MySQLStore implements Store on the kv_entries table of a MySQL database.
type MySQLStore struct {
	db        *sql.DB
	namespace string
	now       func() time.Time
}

// NewMySQLStore creates a store for namespace. The caller owns db.
func NewMySQLStore(db *sql.DB, namespace string) *MySQLStore {
	return &MySQLStore{db: db, namespace: namespace, now: time.Now}
}

func (m *MySQLStore) Get(ctx context.Context, key string) (string, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT entry_value FROM kv_entries WHERE namespace = ? AND entry_key = ?`

	var value string
	if err := querier.QueryRowContext(ctx, query, m.namespace, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Wrap(err, "failed to get kv entry")
	}
	return value, nil
}

func (m *MySQLStore) Set(ctx context.Context, key, value string) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO kv_entries (namespace, entry_key, entry_value, updated_at)
			  VALUES (?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value), updated_at = VALUES(updated_at)`

	if _, err := querier.ExecContext(ctx, query, m.namespace, key, value, m.now().UTC()); err != nil {
		return apperrors.Wrap(err, "failed to set kv entry")
	}
	return nil
}

func (m *MySQLStore) Delete(ctx context.Context, key string) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM kv_entries WHERE namespace = ? AND entry_key = ?`

	if _, err := querier.ExecContext(ctx, query, m.namespace, key); err != nil {
		return apperrors.Wrap(err, "failed to delete kv entry")
	}
	return nil
}

// Close is a no-op; the database connection is shared and closed by its owner.
func (m *MySQLStore) Close() error {
	return nil
}
