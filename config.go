package learnkit

import (
	"errors"
	"net/url"
	"os"
	"time"
)

// Config defines the tunable surface of a [Session]. Config instances are
// intended to be configured during initialization and then treated as
// immutable.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig configures the REST transport.
type APIConfig struct {
	// BaseURL is the scheme+host(+prefix) of the OpenLearn API,
	// e.g. "https://api.openlearn.example". Required.
	BaseURL string
	// Timeout is applied to the default HTTP client when none is
	// injected via [Builder.WithHTTPClient].
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig configures the durable key-value slots backing the session.
type StorageConfig struct {
	// Namespace is prepended (with a ":" separator) to the "token" and
	// "user" storage keys. Empty means the keys are used as-is.
	Namespace string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig configures the audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking when the buffer is
	// full. Dropped counts are reported by [Session.AuditDropped].
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig configures in-process metrics.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns the configuration used by [New] before any
// overrides.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:   15 * time.Second,
			UserAgent: "learnkit/1",
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// Config holds no reference types today; the copy keeps Build
	// insulated from later mutation of the caller's struct.
	return cfg
}

// Validate checks the configuration for structural problems. It is called
// by [Builder.Build].
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return errors.New("API BaseURL is not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("API BaseURL must use http or https")
	}
	if c.API.Timeout < 0 {
		return errors.New("API Timeout must not be negative")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("Audit BufferSize must not be negative")
	}
	return nil
}

// ConfigFromEnv builds a Config from LEARNKIT_* environment variables,
// falling back to defaults for anything unset:
//
//	LEARNKIT_API_BASE_URL, LEARNKIT_API_TIMEOUT, LEARNKIT_USER_AGENT,
//	LEARNKIT_STORAGE_NAMESPACE, LEARNKIT_AUDIT_ENABLED,
//	LEARNKIT_METRICS_ENABLED
func ConfigFromEnv() Config {
	cfg := defaultConfig()
	cfg.API.BaseURL = getenv("LEARNKIT_API_BASE_URL", cfg.API.BaseURL)
	cfg.API.Timeout = getenvDuration("LEARNKIT_API_TIMEOUT", cfg.API.Timeout)
	cfg.API.UserAgent = getenv("LEARNKIT_USER_AGENT", cfg.API.UserAgent)
	cfg.Storage.Namespace = getenv("LEARNKIT_STORAGE_NAMESPACE", cfg.Storage.Namespace)
	cfg.Audit.Enabled = getenvBool("LEARNKIT_AUDIT_ENABLED", cfg.Audit.Enabled)
	cfg.Metrics.Enabled = getenvBool("LEARNKIT_METRICS_ENABLED", cfg.Metrics.Enabled)
	return cfg
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	case "0", "false", "FALSE", "no":
		return false
	}
	return fallback
}
