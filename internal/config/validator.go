package config

import (
	"fmt"
	"os"
	"strconv"
)

// ValidateEnv checks environment variables that would make startup fail
// outright. Everything here has a usable default, so the only hard error
// is an unparseable override.
func ValidateEnv() error {
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("PORT must be an integer, got %q", portStr)
		}
		if port < 1 || port > 65535 {
			return fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
		}
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like relying on default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("PORT") == "" {
		warnings = append(warnings, fmt.Sprintf("PORT not set, using default %d", DefaultPort))
	}
	if os.Getenv("DB_PATH") == "" {
		warnings = append(warnings, fmt.Sprintf("DB_PATH not set, using default %q", DefaultDBName))
	}
	return warnings, nil
}
