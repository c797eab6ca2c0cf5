package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for a specific endpoint. Paths ending
// in "/" are matched by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int // defaults to Limit if 0
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Recommendation runs call the model and issue live validation
		// requests against providers; strictest tier.
		{Path: "/recommendations", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},

		// Auth endpoints: brute-force protection.
		{Path: "/auth/register", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Write operations.
		{Path: "/answers", Method: "POST", Limit: 100, Window: time.Minute, Burst: 20},
		{Path: "/questions", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/questions/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/courses", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/courses", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/announcements", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads fall through to the default limit; /health is unlimited
		// via a special case in the matcher.
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
