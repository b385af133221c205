package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is constructed once at
// startup and passed explicitly to both the initializer and the server.
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// DBPath is the absolute path to the SQLite database file.
	DBPath string

	// ConnectionInfoPath is where the initializer writes the
	// human-readable connection summary.
	ConnectionInfoPath string

	// ViewerEnvPath is the shell-exportable env file consumed by the
	// external db_visualizer tool.
	ViewerEnvPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	dbPath, err := filepath.Abs(getEnv("DB_PATH", DefaultDBName))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}
	cfg.DBPath = dbPath

	cfg.ConnectionInfoPath = getEnv("DB_CONNECTION_FILE", DefaultConnectionInfoFile)
	cfg.ViewerEnvPath = getEnv("DB_VIEWER_ENV_FILE", DefaultViewerEnvFile)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// DBConnString returns the SQLite connection URI for the database file.
func (c *Config) DBConnString() string {
	return fmt.Sprintf("sqlite:///%s", c.DBPath)
}
