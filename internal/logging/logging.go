// Package logging builds the charmbracelet loggers used by the CLI,
// the SSH server and the simulation.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	EnvLogLevel     = "PACMAN_LOG_LEVEL"
	EnvLogTimestamp = "PACMAN_LOG_TIMESTAMP"
)

// Options configures a logger.
type Options struct {
	Prefix    string
	Level     string // empty uses the environment, then info
	Timestamp bool
}

// New creates a logger writing to w. A level of "off" discards all output.
// PACMAN_LOG_LEVEL and PACMAN_LOG_TIMESTAMP override unset options.
func New(w io.Writer, opts Options) *log.Logger {
	raw := opts.Level
	if raw == "" {
		raw = os.Getenv(EnvLogLevel)
	}
	level, off := parseLevel(raw)
	if off {
		w = io.Discard
	}

	timestamp := opts.Timestamp
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		timestamp = v
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          opts.Prefix,
		Level:           level,
		ReportTimestamp: timestamp,
		TimeFormat:      time.Kitchen,
	})
}

// Stderr creates the runtime logger for a CLI command.
func Stderr(prefix, level string) *log.Logger {
	return New(os.Stderr, Options{Prefix: prefix, Level: level, Timestamp: true})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ValidLevel reports whether raw names a known level.
func ValidLevel(raw string) bool {
	switch normalize(raw) {
	case "", "debug", "info", "warn", "warning", "error", "off", "none", "disabled":
		return true
	}
	return false
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// parseLevel maps a level name to a log level; off reports a disabled logger.
func parseLevel(raw string) (level log.Level, off bool) {
	switch normalize(raw) {
	case "debug":
		return log.DebugLevel, false
	case "warn", "warning":
		return log.WarnLevel, false
	case "error":
		return log.ErrorLevel, false
	case "off", "none", "disabled":
		return log.FatalLevel, true
	default:
		return log.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
