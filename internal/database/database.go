// Package database provides the SQL connection and transaction handling used by the
// PostgreSQL and MySQL storage drivers.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

const (
	defaultPingAttempts = 3
	pingBackoff         = 500 * time.Millisecond
)

// Config holds database configuration settings.
type Config struct {
	Driver             string
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
	// PingAttempts bounds how often the first ping is tried. Zero means 3.
	PingAttempts int
}

// Connect opens a pool for one of the registered drivers ("postgres", "mysql") and
// pings it, retrying with a linear backoff while the server comes up. The pool is
// closed if no ping succeeds.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	if !slices.Contains(sql.Drivers(), cfg.Driver) {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := ping(ctx, db, cfg.PingAttempts); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func ping(ctx context.Context, db *sql.DB, attempts int) error {
	if attempts <= 0 {
		attempts = defaultPingAttempts
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * pingBackoff):
		}
	}
	return err
}
