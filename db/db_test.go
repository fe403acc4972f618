package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_RejectsUnknownDriver(t *testing.T) {
	_, err := Connect("mysql", "whatever", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestConnect_SQLiteIsSingleConnection(t *testing.T) {
	conn, err := Connect(DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)
}

func TestEnsureSchema_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn, err := Connect(DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, EnsureSchema(ctx, conn, DriverSQLite))
	require.NoError(t, EnsureSchema(ctx, conn, DriverSQLite))

	var tables int
	err = conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('players', 'player_stats')`,
	).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 2, tables)
}

func TestEnsureSchema_RejectsUnbalancedCounters(t *testing.T) {
	ctx := context.Background()
	conn, err := Connect(DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, EnsureSchema(ctx, conn, DriverSQLite))

	_, err = conn.ExecContext(ctx, `INSERT INTO players (player_name) VALUES ('Alice')`)
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx,
		`INSERT INTO player_stats (player_id, matches_played, wins, losses, points) VALUES (1, 2, 1, 0, 3)`)
	assert.Error(t, err, "matches_played must equal wins + losses")
}

func TestEnsureSchema_UnknownDriver(t *testing.T) {
	conn, err := Connect(DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	defer conn.Close()

	assert.Error(t, EnsureSchema(context.Background(), conn, "oracle"))
}
