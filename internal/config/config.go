package config

import "os"

// Config holds configuration for the demo trade client.
type Config struct {
	// Service name
	ServiceName string

	// Path to the quickfix session settings file
	SettingsPath string

	// Base FIX comp ID, without the "-TR" suffix
	CompID string

	// Log level: debug, info, warn, error
	LogLevel string
}

// LoadConfig loads configuration from environment variables with defaults
func LoadConfig(serviceName string) *Config {
	return &Config{
		ServiceName:  serviceName,
		SettingsPath: getEnvAsString("FIX_SETTINGS", "config/tradeclient.cfg"),
		CompID:       getEnvAsString("FIX_COMP_ID", "CLIENT1"),
		LogLevel:     getEnvAsString("LOG_LEVEL", "info"),
	}
}

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
