package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/allisson/bankvault/migrations"
)

// RunMigrations applies the embedded kv_entries schema for dbDriver ("postgres" or
// "mysql") using the same connection string the storage driver opens. An up-to-date
// schema is not an error.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string) error {
	fsys, err := migrations.ForDriver(dbDriver)
	if err != nil {
		return err
	}

	source, err := iofs.New(fsys, ".")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	logger.Info("running database migrations", slog.String("driver", dbDriver))

	m, err := migrate.NewWithSourceInstance("iofs", source, migrationURL(dbDriver, dbConnectionString))
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	logger.Info("migrations completed successfully",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)
	return nil
}

// migrationURL adds the mysql:// scheme that migrate expects in front of a
// go-sql-driver DSN. Postgres URLs are accepted by both as is.
func migrationURL(dbDriver, dbConnectionString string) string {
	if dbDriver == "mysql" && !strings.HasPrefix(dbConnectionString, "mysql://") {
		return "mysql://" + dbConnectionString
	}
	return dbConnectionString
}
