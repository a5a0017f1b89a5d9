package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable
func ValidateConfig(cfg *Config) error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("PORT must be a valid port number, got %q", cfg.Port))
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			errors = append(errors, "DB_PATH is required when DB_DRIVER is sqlite")
		}
	case "postgres":
		if cfg.DBHost == "" {
			errors = append(errors, "DB_HOST is required when DB_DRIVER is postgres")
		}
		if cfg.DBName == "" {
			errors = append(errors, "DB_NAME is required when DB_DRIVER is postgres")
		}
	default:
		errors = append(errors, fmt.Sprintf("DB_DRIVER must be sqlite or postgres, got %q", cfg.DBDriver))
	}

	if !strings.HasPrefix(cfg.GraphQLPath, "/") {
		errors = append(errors, fmt.Sprintf("GRAPHQL_PATH must start with /, got %q", cfg.GraphQLPath))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
