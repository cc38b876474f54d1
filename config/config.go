package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	// HTTP server configuration
	HTTP HTTPConfig

	// Feature flags
	Features FeatureFlags

	// Application title shown in the top bar and <title>
	Title string

	// Path to a YAML menu file; empty means the built-in menu
	MenuPath string

	// Session cookie configuration
	Session SessionConfig

	// Shared state configuration
	Store StoreConfig

	LogLevel string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// FeatureFlags holds feature flag settings
type FeatureFlags struct {
	MetricsEnabled bool
	DevLogin       bool // exposes POST /appshell/login
}

// SessionConfig holds visitor cookie settings
type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// StoreConfig holds per-visitor state settings
type StoreConfig struct {
	MaxVisitors     int
	DarkModeDefault bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Host:            getEnvString("APPSHELL_HTTP_HOST", "0.0.0.0"),
			Port:            getEnvInt("APPSHELL_HTTP_PORT", 8080),
			ShutdownTimeout: time.Duration(getEnvInt("APPSHELL_HTTP_SHUTDOWN_SECONDS", 10)) * time.Second,
		},
		Features: FeatureFlags{
			MetricsEnabled: getEnvBool("APPSHELL_METRICS_ENABLED", true),
			DevLogin:       getEnvBool("APPSHELL_DEV_LOGIN", true),
		},
		Title:    getEnvString("APPSHELL_TITLE", "App Shell"),
		MenuPath: getEnvString("APPSHELL_MENU_PATH", ""),
		Session: SessionConfig{
			Secret:     getEnvString("APPSHELL_SESSION_SECRET", ""),
			TTL:        time.Duration(getEnvInt("APPSHELL_SESSION_TTL_HOURS", 24*30)) * time.Hour,
			CookieName: getEnvString("APPSHELL_SESSION_COOKIE", "appshell_session"),
			Secure:     getEnvBool("APPSHELL_SESSION_SECURE", false),
		},
		Store: StoreConfig{
			MaxVisitors:     getEnvInt("APPSHELL_STORE_SIZE", 10000),
			DarkModeDefault: getEnvBool("APPSHELL_DARK_MODE_DEFAULT", false),
		},
		LogLevel: getEnvString("APPSHELL_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port %d", c.HTTP.Port)
	}
	if c.Store.MaxVisitors <= 0 {
		return fmt.Errorf("store size must be positive, got %d", c.Store.MaxVisitors)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %s", c.Session.TTL)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}
	return nil
}

// GetAddress returns the HTTP server address
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// Helper functions for environment variables
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
