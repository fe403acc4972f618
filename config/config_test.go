package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"DATABASE_URL", "DATABASE_DRIVER", "DB_CONNECT_TIMEOUT", "SERVER_PORT",
	"CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
	"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL",
}

// clearEnv blanks every variable the package reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/tournament?sslmode=disable")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.R2BucketName)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "file:swiss.db")
	t.Setenv("DATABASE_DRIVER", " SQLite3 ")
	t.Setenv("DB_CONNECT_TIMEOUT", "750ms")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("R2_BUCKET_NAME", "rounds")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.DatabaseDriver)
	assert.Equal(t, 750*time.Millisecond, cfg.DBConnectTimeout)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "rounds", cfg.R2BucketName)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"missing url", "DATABASE_URL", ""},
		{"unknown driver", "DATABASE_DRIVER", "mysql"},
		{"bad timeout", "DB_CONNECT_TIMEOUT", "soon"},
		{"negative timeout", "DB_CONNECT_TIMEOUT", "-1s"},
		{"bad port", "SERVER_PORT", "http"},
		{"port out of range", "SERVER_PORT", "70000"},
		{"bad log level", "LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DATABASE_URL", "postgres://localhost/tournament")
			t.Setenv(tt.key, tt.value)

			cfg, err := FromEnv()
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, so unset the ones the file provides.
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	require.NoError(t, os.Unsetenv("DATABASE_DRIVER"))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("DATABASE_DRIVER")
	})

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=file:from-env-file.db\nDATABASE_DRIVER=sqlite3\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file:from-env-file.db", cfg.DatabaseURL)
	assert.Equal(t, "sqlite3", cfg.DatabaseDriver)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
