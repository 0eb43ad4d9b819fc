package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSchema_EmbeddedDefault(t *testing.T) {
	sql, err := loadSchema("")
	require.NoError(t, err)
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS rsvps")
	require.Contains(t, sql, "UNIQUE (event_id, email)")
}

func TestLoadSchema_OverrideAndEmpty(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.sql")
	require.NoError(t, os.WriteFile(custom, []byte("SELECT 1;\n"), 0o600))

	sql, err := loadSchema(custom)
	require.NoError(t, err)
	require.Equal(t, "SELECT 1;", sql)

	empty := filepath.Join(dir, "empty.sql")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o600))
	_, err = loadSchema(empty)
	require.Error(t, err)

	_, err = loadSchema(filepath.Join(dir, "missing.sql"))
	require.Error(t, err)
}

func TestConnect_RequiresURL(t *testing.T) {
	_, err := Connect(context.Background(), PoolOptions{})
	require.Error(t, err)
}

func TestOpenSQLite(t *testing.T) {
	pool, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec("CREATE TABLE t (x INTEGER)")
	require.NoError(t, err)
}
