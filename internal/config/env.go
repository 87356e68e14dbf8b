package config

import (
	"os"
	"strconv"
)

// LoadFromEnv loads configuration from environment variables.
// Environment variables override default values.
func LoadFromEnv(cfg *Config) {
	if dbPath := os.Getenv("WORKTRACKAGE_DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	if display := os.Getenv("WORKTRACKAGE_DISPLAY"); display != "" {
		cfg.Display = display
	}

	if sampleTime := os.Getenv("WORKTRACKAGE_SAMPLE_TIME"); sampleTime != "" {
		if seconds, err := strconv.Atoi(sampleTime); err == nil && seconds > 0 {
			cfg.SampleTime = seconds
		}
	}

	if excludeBlanks := os.Getenv("WORKTRACKAGE_EXCLUDE_BLANKS"); excludeBlanks != "" {
		if val, err := strconv.ParseBool(excludeBlanks); err == nil {
			cfg.ExcludeBlanks = val
		}
	}
}

// New creates a new Config with default values and loads from
// environment.
func New() *Config {
	cfg := Default()
	LoadFromEnv(cfg)
	return cfg
}
