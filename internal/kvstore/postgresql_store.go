package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/bankvault/internal/database"
	apperrors "github.com/allisson/bankvault/internal/errors"
)

// PostgreSQLStore implements Store on the kv_entries table of a PostgreSQL database.
type PostgreSQLStore struct {
	db        *sql.DB
	namespace string
	now       func() time.Time
}

// NewPostgreSQLStore creates a store for namespace. The caller owns db.
func NewPostgreSQLStore(db *sql.DB, namespace string) *PostgreSQLStore {
	return &PostgreSQLStore{db: db, namespace: namespace, now: time.Now}
}

func (p *PostgreSQLStore) Get(ctx context.Context, key string) (string, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT entry_value FROM kv_entries WHERE namespace = $1 AND entry_key = $2`

	var value string
	if err := querier.QueryRowContext(ctx, query, p.namespace, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Wrap(err, "failed to get kv entry")
	}
	return value, nil
}

func (p *PostgreSQLStore) Set(ctx context.Context, key, value string) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO kv_entries (namespace, entry_key, entry_value, updated_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (namespace, entry_key)
			  DO UPDATE SET entry_value = EXCLUDED.entry_value, updated_at = EXCLUDED.updated_at`

	if _, err := querier.ExecContext(ctx, query, p.namespace, key, value, p.now().UTC()); err != nil {
		return apperrors.Wrap(err, "failed to set kv entry")
	}
	return nil
}

func (p *PostgreSQLStore) Delete(ctx context.Context, key string) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM kv_entries WHERE namespace = $1 AND entry_key = $2`

	if _, err := querier.ExecContext(ctx, query, p.namespace, key); err != nil {
		return apperrors.Wrap(err, "failed to delete kv entry")
	}
	return nil
}

// Close is a no-op; the database connection is shared and closed by its owner.
func (p *PostgreSQLStore) Close() error {
	return nil
}
