package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	// The file exists once the first statement runs.
	_, err = db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenEnablesForeignKeys(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled, "foreign key enforcement must be on; SQLite defaults to off")
}

func TestOpenSetsBusyTimeout(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "busy.db"))
	require.NoError(t, err)
	defer db.Close()

	var timeout int64
	require.NoError(t, db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, DefaultBusyTimeout.Milliseconds(), timeout)
}
