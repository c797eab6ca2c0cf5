// Package config provides configuration loading and validation for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration for the career-compass service.
// All values are read from the environment; missing optional values use
// defaults.
type Config struct {
	// Required
	DatabaseURL  string // PostgreSQL connection URL
	GeminiAPIKey string // API key for the recommendation provider

	// Resolution tuning
	ResolveTimeout     time.Duration // hard ceiling for resolving one course
	ValidateTimeout    time.Duration // per-candidate HTTP validation timeout
	ResolveConcurrency int           // bounded fan-out across a course batch
	UseBrowser         bool          // render provider search pages in a headless browser

	// Behavior
	Verbose bool
}

// Load reads the service configuration from the environment.
// DATABASE_URL and GEMINI_API_KEY are required; everything else defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		ResolveTimeout:     getEnvDuration("RESOLVE_TIMEOUT", 30*time.Second),
		ValidateTimeout:    getEnvDuration("VALIDATE_TIMEOUT", 5*time.Second),
		ResolveConcurrency: getEnvInt("RESOLVE_CONCURRENCY", 4),
		UseBrowser:         getEnvBool("RESOLVE_USE_BROWSER", false),
		Verbose:            getEnvBool("VERBOSE", false),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.ResolveConcurrency < 1 {
		return fmt.Errorf("RESOLVE_CONCURRENCY must be at least 1, got: %d", c.ResolveConcurrency)
	}
	if c.ValidateTimeout < time.Second {
		return fmt.Errorf("VALIDATE_TIMEOUT must be at least 1s, got: %s", c.ValidateTimeout)
	}
	if c.ResolveTimeout < c.ValidateTimeout {
		return fmt.Errorf("RESOLVE_TIMEOUT (%s) must not be shorter than VALIDATE_TIMEOUT (%s)",
			c.ResolveTimeout, c.ValidateTimeout)
	}
	return nil
}

// getEnvInt gets an environment variable as an int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
