package db

import (
	"context"
	"database/sql"
	"fmt"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id          SERIAL PRIMARY KEY,
		player_name TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS player_stats (
		player_id      INTEGER PRIMARY KEY REFERENCES players (id) ON DELETE CASCADE,
		matches_played INTEGER NOT NULL DEFAULT 0 CHECK (matches_played >= 0),
		wins           INTEGER NOT NULL DEFAULT 0 CHECK (wins >= 0),
		losses         INTEGER NOT NULL DEFAULT 0 CHECK (losses >= 0),
		points         INTEGER NOT NULL DEFAULT 0 CHECK (points >= 0),
		CONSTRAINT player_stats_matches_balance CHECK (matches_played = wins + losses)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_player_stats_wins ON player_stats (wins DESC, player_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS player_stats (
		player_id      INTEGER PRIMARY KEY REFERENCES players (id) ON DELETE CASCADE,
		matches_played INTEGER NOT NULL DEFAULT 0 CHECK (matches_played >= 0),
		wins           INTEGER NOT NULL DEFAULT 0 CHECK (wins >= 0),
		losses         INTEGER NOT NULL DEFAULT 0 CHECK (losses >= 0),
		points         INTEGER NOT NULL DEFAULT 0 CHECK (points >= 0),
		CONSTRAINT player_stats_matches_balance CHECK (matches_played = wins + losses)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_player_stats_wins ON player_stats (wins DESC, player_id)`,
}

// EnsureSchema creates the players and player_stats tables when they are missing.
// Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	var statements []string
	switch driver {
	case DriverPostgres, "":
		statements = postgresSchema
	case DriverSQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
