// Package logging provides the leveled logger used across the task tracker.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level           string
	Debug           bool
	ReportTimestamp bool
}

var (
	mu  sync.RWMutex
	std = New(os.Stderr, Options{Level: "info"})
)

// DebugEnabled returns true if debug mode is enabled via TK_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TK_DEBUG") != ""
}

// New creates a logger writing to w. Debug output is enabled by opts.Debug
// or by setting TK_DEBUG.
func New(w io.Writer, opts Options) *log.Logger {
	level := ParseLevel(opts.Level)
	if opts.Debug || DebugEnabled() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "tk",
		ReportTimestamp: opts.ReportTimestamp,
	})
}

// ParseLevel converts a level name to a log.Level, defaulting to info.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Default returns the package-level logger.
func Default() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

// SetDefault replaces the package-level logger.
func SetDefault(logger *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	std = logger
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}
