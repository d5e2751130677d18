// Package config loads daemon configuration from environment variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the companion daemon.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	// The daemon serves a single local user, so it defaults to loopback.
	// Default: "127.0.0.1:8787"
	ListenAddr string

	// DBPath is the SQLite database file holding credential, selection,
	// and summary state. Default: "clipdigest.db"
	DBPath string

	// CORSPolicyPath is an optional YAML file restricting which extension
	// origins may call the daemon. When empty, any extension origin is allowed.
	CORSPolicyPath string

	// MaxBodyBytes caps incoming request bodies. Selections are limited to
	// 10k characters, so the default leaves generous headroom for JSON
	// framing and multi-byte text. Default: 1 MiB
	MaxBodyBytes int64

	// ShutdownTimeout is how long graceful shutdown waits for in-flight
	// requests. Default: 10 seconds
	ShutdownTimeout time.Duration

	// Summarizer configures the upstream completion provider.
	Summarizer SummarizerConfig
}

// SummarizerConfig holds configuration for the completion provider client.
type SummarizerConfig struct {
	// BaseURL overrides the provider endpoint. Empty means the provider's
	// public API. Used for self-hosted gateways and tests.
	BaseURL string

	// Timeout is the per-request timeout for completion calls.
	// Default: 60 seconds
	Timeout time.Duration

	// ResilienceEnabled turns on retry with backoff and the circuit breaker
	// around completion calls. Off by default: a popup-triggered request is
	// interactive, and the user can simply click again.
	ResilienceEnabled bool
}

// Load reads daemon configuration from environment variables.
// Returns a config with defaults where variables are not set.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:      getEnvOrDefault("LISTEN_ADDR", "127.0.0.1:8787"),
		DBPath:          getEnvOrDefault("DB_PATH", "clipdigest.db"),
		CORSPolicyPath:  os.Getenv("CORS_POLICY_FILE"),
		MaxBodyBytes:    int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Summarizer: SummarizerConfig{
			BaseURL:           os.Getenv("OPENAI_BASE_URL"),
			Timeout:           getEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
			ResilienceEnabled: getEnvBool("SUMMARIZER_RESILIENCE_ENABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR cannot be empty")
	}
	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return fmt.Errorf("LISTEN_ADDR must be host:port: %w", err)
	}

	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}

	if c.Summarizer.Timeout <= 0 {
		return fmt.Errorf("SUMMARIZER_TIMEOUT must be positive")
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool parses boolean environment variable with default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvInt parses integer environment variable with default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration parses duration environment variable with default.
// Supports formats like "30s", "1m", "2h".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
