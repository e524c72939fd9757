package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the task tracker
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Backend         string        `yaml:"backend" env:"TK_STORAGE_BACKEND"`
	Dir             string        `yaml:"dir" env:"TK_DATA_DIR"`
	Filename        string        `yaml:"filename" env:"TK_DATA_FILENAME"`
	DirPermissions  uint32        `yaml:"dir_permissions" env:"TK_DATA_DIR_PERMISSIONS"`
	FilePermissions uint32        `yaml:"file_permissions" env:"TK_DATA_FILE_PERMISSIONS"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"TK_STORAGE_WRITE_TIMEOUT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int `yaml:"description_max_length" env:"TK_VALIDATION_DESCRIPTION_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	FrameWidth int  `yaml:"frame_width" env:"TK_DISPLAY_FRAME_WIDTH"`
	Plain      bool `yaml:"plain" env:"TK_DISPLAY_PLAIN"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Debug    bool   `yaml:"debug" env:"TK_DEBUG"`
	LogLevel string `yaml:"log_level" env:"TK_LOG_LEVEL"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".tk")

	return &Config{
		Storage: StorageConfig{
			Backend:         BackendFile,
			Dir:             defaultDataDir,
			DirPermissions:  0755,
			FilePermissions: 0644,
			WriteTimeout:    5 * time.Second,
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: 255,
		},
		Display: DisplayConfig{
			FrameWidth: 60,
			Plain:      false,
		},
		Application: ApplicationConfig{
			Debug:    false,
			LogLevel: "info",
		},
	}
}

// GetDataPath returns the full path to the task data file
func (c *Config) GetDataPath() string {
	filename := c.Storage.Filename
	if filename == "" {
		filename = DefaultFilename(c.Storage.Backend)
	}
	return filepath.Join(c.Storage.Dir, filename)
}

// DefaultFilename returns the data filename used when none is configured
func DefaultFilename(backend string) string {
	if backend == BackendSQLite {
		return "tasks.db"
	}
	return "tasks.csv"
}

// GetWriteTimeout returns the storage write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// DefaultConfigPath returns the config file location, honouring TK_CONFIG
func DefaultConfigPath() string {
	if path := os.Getenv("TK_CONFIG"); path != "" {
		return path
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tk", "config.yaml")
}

// LoadFromFile merges a YAML config file over the current values.
// A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("invalid YAML in %s: %v", path, err)}
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TK_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("TK_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TK_DATA_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("TK_DATA_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}
	if perms := os.Getenv("TK_DATA_FILE_PERMISSIONS"); perms != "" {
		c.Storage.FilePermissions = ParseUint32WithFallback(perms, 8, c.Storage.FilePermissions)
	}
	if timeout := os.Getenv("TK_STORAGE_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}

	// Validation configuration
	if maxLen := os.Getenv("TK_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	// Display configuration
	if width := os.Getenv("TK_DISPLAY_FRAME_WIDTH"); width != "" {
		c.Display.FrameWidth = ParseIntWithFallback(width, c.Display.FrameWidth)
	}
	if plain := os.Getenv("TK_DISPLAY_PLAIN"); plain != "" {
		c.Display.Plain = ParseBoolWithFallback(plain, c.Display.Plain)
	}

	// Application configuration
	if debug := os.Getenv("TK_DEBUG"); debug != "" {
		c.Application.Debug = ParseBoolWithFallback(debug, true)
	}
	if level := os.Getenv("TK_LOG_LEVEL"); level != "" {
		c.Application.LogLevel = level
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Backend != BackendFile && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of: file, sqlite"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	// Validate display configuration
	if c.Display.FrameWidth < 20 {
		return &ConfigError{Field: "display.frame_width", Message: "frame width must be at least 20"}
	}

	// Validate application configuration
	switch c.Application.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "application.log_level", Message: "log level must be one of: debug, info, warn, error"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
