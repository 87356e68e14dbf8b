// Package config holds the per-run settings. Defaults come first,
// environment variables override them, and command-line flags
// override both (the flag layer lives in cmd).
package config

import "fmt"

// DefaultSampleTime is the declared sample interval in seconds when
// none is given. It is recorded in the snapshot, not measured.
const DefaultSampleTime = 60

// Config holds all settings for one snapshot run.
type Config struct {
	// DBPath is the SQLite database file to write to. Empty means the
	// per-user default path.
	DBPath string

	// Display is the X display to open. Empty means the default
	// display from the environment.
	Display string

	// SampleTime is the interval in seconds this snapshot represents.
	// Must be positive.
	SampleTime int

	// ExcludeBlanks skips windows without a name, class or title.
	// Useful when the full parent chain is not needed, since blank
	// windows carry no classifiable information.
	ExcludeBlanks bool
}

// Default returns a Config with the built-in default values.
func Default() *Config {
	return &Config{
		SampleTime: DefaultSampleTime,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleTime <= 0 {
		return fmt.Errorf("sample time must be a positive number of seconds, got %d", c.SampleTime)
	}
	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(`Configuration:
  Database: %s
  Display: %s
  Sample Time: %ds
  Exclude Blanks: %v`,
		c.DBPath,
		c.Display,
		c.SampleTime,
		c.ExcludeBlanks,
	)
}
