package bootstrap

import (
	"github.com/kavia-common/gaming-database/internal/config"
	"github.com/kavia-common/gaming-database/internal/logger"
)

// SetupLogger initializes the default logger from application config.
func SetupLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		config.ServiceName,
		Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)

	logger.Info("Logging initialized",
		"level", cfg.LogLevel,
		"format", cfg.LogFormat,
		"environment", cfg.Environment)
}
