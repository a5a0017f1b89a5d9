package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBDriver   string // "sqlite" or "postgres"
	DBPath     string // sqlite file path
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// CORS configuration: parsed allow-list, or ["*"] for any origin
	CORSOrigins []string

	// GraphQL endpoint mount path
	GraphQLPath string

	// Logging
	LogLevel string
}

// LoadConfig creates a new Config instance from environment variables.
// A .env file in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "4000"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBPath:      sqlitePath(),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "leftovers"),
		DBSSLMode:   getEnv("DB_SSL_MODE", "disable"),
		CORSOrigins: parseOrigins(os.Getenv("CORS_ORIGIN")),
		GraphQLPath: getEnv("GRAPHQL_PATH", "/graphql"),
		LogLevel:    defaultLogLevel(),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parseOrigins splits a comma-separated origin list. An empty value or "*"
// allows any origin.
func parseOrigins(origins string) []string {
	if origins == "" || origins == "*" {
		return []string{"*"}
	}

	parts := strings.Split(origins, ",")
	parsed := make([]string, 0, len(parts))
	for _, origin := range parts {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			parsed = append(parsed, trimmed)
		}
	}
	if len(parsed) == 0 {
		return []string{"*"}
	}
	return parsed
}

// AllowAllOrigins reports whether the CORS configuration is a wildcard.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*"
}

// sqlitePath resolves the sqlite storage file, honoring both the SQLITE_PATH
// and DB_PATH variables
func sqlitePath() string {
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		return path
	}
	return getEnv("DB_PATH", "database.sqlite")
}

func defaultLogLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	if IsProduction() {
		return "info"
	}
	return "debug"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
