// Package kvstore provides the local key-value persistence used for encrypted banking
// containers, fallback device keys and sealed primary keys.
//
// Every store is scoped to a namespace so that the same backend can hold several
// independent key spaces. Values are opaque strings.
package kvstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is a namespaced string key-value store. Get returns errors.ErrNotFound when the
// key is absent and Delete of an absent key succeeds.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Supported storage drivers.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Namespaces used by the application.
const (
	NamespaceBanking      = "banking"
	NamespacePrimaryKeys  = "primary-keys"
	NamespaceFallbackKeys = "fallback-keys"
	NamespaceAuth         = "auth"
)

// ValidateDriver checks that driver names a supported backend.
func ValidateDriver(driver string) error {
	switch driver {
	case DriverFile, DriverMemory, DriverPostgres, DriverMySQL:
		return nil
	default:
		return fmt.Errorf("unsupported storage driver %q (valid options: file, memory, postgres, mysql)", driver)
	}
}

// IsSQLDriver reports whether driver stores data in a SQL database.
func IsSQLDriver(driver string) bool {
	return driver == DriverPostgres || driver == DriverMySQL
}

// Open returns a Store for namespace on the given driver. db is only used by the SQL
// drivers and dataDir only by the file driver.
func Open(driver, dataDir string, db *sql.DB, namespace string) (Store, error) {
	switch driver {
	case DriverFile:
		return NewFileStore(dataDir, namespace)
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("storage driver %s requires a database connection", driver)
		}
		return NewPostgreSQLStore(db, namespace), nil
	case DriverMySQL:
		if db == nil {
			return nil, fmt.Errorf("storage driver %s requires a database connection", driver)
		}
		return NewMySQLStore(db, namespace), nil
	default:
		return nil, ValidateDriver(driver)
	}
}
