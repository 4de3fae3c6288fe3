package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Remote API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Credential store
	CredentialDBPath string

	// Category cache
	CategoryCacheTTL time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		APIBaseURL:  getEnv("FINTRACK_API_URL", "http://localhost:5000/api"),
		HTTPTimeout: getEnvDuration("FINTRACK_HTTP_TIMEOUT", 15*time.Second),

		CredentialDBPath: getEnv("FINTRACK_DB_PATH", defaultDBPath()),

		CategoryCacheTTL: getEnvDuration("FINTRACK_CATEGORY_CACHE_TTL", 5*time.Minute),

		LogLevel: getEnv("FINTRACK_LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate API base URL
	if c.APIBaseURL == "" {
		errors = append(errors, "API base URL cannot be empty")
	} else if parsedURL, err := url.Parse(c.APIBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	// Validate credential store path
	if c.CredentialDBPath == "" {
		errors = append(errors, "credential database path cannot be empty")
	} else {
		dir := filepath.Dir(c.CredentialDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0700); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create credential database directory '%s': %v", dir, err))
				}
			}
		}
	}

	// Validate timeouts
	if c.HTTPTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	if c.CategoryCacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid category cache TTL %v: must not be negative", c.CategoryCacheTTL))
	}

	// Validate log level
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data/fintrack.db"
	}
	return filepath.Join(home, ".fintrack", "fintrack.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
