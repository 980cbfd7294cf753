package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForDriver(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			fsys, err := ForDriver(driver)
			require.NoError(t, err)

			up, err := fs.ReadFile(fsys, "000001_create_kv_entries_table.up.sql")
			require.NoError(t, err)
			assert.Contains(t, string(up), "kv_entries")

			down, err := fs.ReadFile(fsys, "000001_create_kv_entries_table.down.sql")
			require.NoError(t, err)
			assert.Contains(t, string(down), "DROP TABLE")
		})
	}

	t.Run("unknown", func(t *testing.T) {
		fsys, err := ForDriver("sqlite3")
		assert.Nil(t, fsys)
		assert.EqualError(t, err, `no migrations for database driver "sqlite3"`)
	})
}
