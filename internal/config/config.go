package config

import (
	"fmt"
	"os"
	"strconv"

	"userAccountManagement/internal/validate"
)

// Config holds all application configuration.
type Config struct {
	Admin  AdminConfig
	Naming NamingConfig
}

// AdminConfig contains admin account settings.
type AdminConfig struct {
	DefaultLevel int // starting level for new admins
}

// NamingConfig contains display-name settings.
type NamingConfig struct {
	MaxNameLength int // limit passed to name truncation
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	defaultLevel, err := getEnvInt("ADMIN_DEFAULT_LEVEL", 1)
	if err != nil {
		return nil, err
	}
	maxNameLength, err := getEnvInt("MAX_NAME_LENGTH", validate.MaxNameLength)
	if err != nil {
		return nil, err
	}

	// Validate critical settings
	if maxNameLength <= 0 {
		return nil, fmt.Errorf("MAX_NAME_LENGTH must be positive, got %d", maxNameLength)
	}

	return &Config{
		Admin:  AdminConfig{DefaultLevel: defaultLevel},
		Naming: NamingConfig{MaxNameLength: maxNameLength},
	}, nil
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{AdminLevel: %d, MaxNameLength: %d}", c.Admin.DefaultLevel, c.Naming.MaxNameLength)
}
