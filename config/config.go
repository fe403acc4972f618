package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDriver         = "postgres"
	defaultPort           = 8080
	defaultConnectTimeout = 5 * time.Second
)

// Config holds every setting the application reads from the environment.
type Config struct {
	DatabaseURL        string
	DatabaseDriver     string
	DBConnectTimeout   time.Duration
	ServerPort         int
	CORSAllowedOrigins []string
	LogLevel           slog.Level

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()
	return FromEnv()
}

// LoadFile loads the given env files before reading the environment.
func LoadFile(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DATABASE_DRIVER")))
	if driver == "" {
		driver = defaultDriver
	}
	if driver != "postgres" && driver != "sqlite3" {
		return nil, fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite3, got %q", driver)
	}

	timeout := defaultConnectTimeout
	if raw := os.Getenv("DB_CONNECT_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT environment variable: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %s", parsed)
		}
		timeout = parsed
	}

	port := defaultPort
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
		}
		port = parsed
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:        dbURL,
		DatabaseDriver:     driver,
		DBConnectTimeout:   timeout,
		ServerPort:         port,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		LogLevel:           level,
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:      os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:  os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:       os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:    os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

func splitList(raw string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
