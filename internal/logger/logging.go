// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a new charm log writing to stderr. Stdout is reserved for
// the msgpack stream in server mode.
func New(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, true, log.TextFormatter)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// Install replaces the package level default logger, which is what the
// library packages log through.
func Install(prefix string, level log.Level, debug bool) *log.Logger {
	l := NewWithConfig(os.Stderr, prefix, level, debug, debug, log.TextFormatter)
	log.SetDefault(l)
	return l
}

// ParseLevel parses a level name, falling back to warn for unknown names.
func ParseLevel(name string) log.Level {
	if name == "" {
		return log.WarnLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		log.Warnf("Unknown log level %q, using warn", name)
		return log.WarnLevel
	}
	return level
}
