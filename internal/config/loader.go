package config

import (
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configPath string
}

// NewLoader creates a new configuration loader reading the default config file
func NewLoader() *Loader {
	return &Loader{
		config:     NewConfig(),
		configPath: DefaultConfigPath(),
	}
}

// NewLoaderWithPath creates a loader that reads the given config file
func NewLoaderWithPath(path string) *Loader {
	return &Loader{
		config:     NewConfig(),
		configPath: path,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromFile(l.configPath); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Backend      *string
	DataDir      *string
	DataFilename *string
	WriteTimeout *time.Duration

	// Validation overrides
	DescriptionMaxLength *int

	// Display overrides
	FrameWidth *int
	Plain      *bool

	// Application overrides
	Debug    *bool
	LogLevel *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}
	if overrides.DataDir != nil {
		config.Storage.Dir = *overrides.DataDir
	}
	if overrides.DataFilename != nil {
		config.Storage.Filename = *overrides.DataFilename
	}
	if overrides.WriteTimeout != nil {
		config.Storage.WriteTimeout = *overrides.WriteTimeout
	}

	if overrides.DescriptionMaxLength != nil {
		config.Validation.DescriptionMaxLength = *overrides.DescriptionMaxLength
	}

	if overrides.FrameWidth != nil {
		config.Display.FrameWidth = *overrides.FrameWidth
	}
	if overrides.Plain != nil {
		config.Display.Plain = *overrides.Plain
	}

	if overrides.Debug != nil {
		config.Application.Debug = *overrides.Debug
	}
	if overrides.LogLevel != nil {
		config.Application.LogLevel = *overrides.LogLevel
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
