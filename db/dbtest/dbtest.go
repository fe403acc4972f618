// Package dbtest opens throwaway SQLite databases with the production schema for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns an in-memory database with the schema applied. It is closed when the test ends.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()
	return open(t, ":memory:?_foreign_keys=on")
}

// NewSQLiteFile is like NewSQLite but backed by a file, so separate handles see the same data.
func NewSQLiteFile(t testing.TB, path string) *sql.DB {
	t.Helper()
	return open(t, "file:"+path+"?_foreign_keys=on")
}

func open(t testing.TB, dsn string) *sql.DB {
	t.Helper()

	conn, err := db.Connect(db.DriverSQLite, dsn, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.EnsureSchema(context.Background(), conn, db.DriverSQLite))
	return conn
}
