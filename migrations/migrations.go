// Package migrations embeds the kv_entries schema for each SQL storage driver so the
// binary can migrate without the source tree on disk.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgresql/*.sql mysql/*.sql
var files embed.FS

// ForDriver returns the migration files for a database/sql driver name.
func ForDriver(driver string) (fs.FS, error) {
	var dir string
	switch driver {
	case "postgres":
		dir = "postgresql"
	case "mysql":
		dir = "mysql"
	default:
		return nil, fmt.Errorf("no migrations for database driver %q", driver)
	}
	return fs.Sub(files, dir)
}
