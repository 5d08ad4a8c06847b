// Package logging sets up the file-backed logger. The terminal belongs to
// the TUI, so nothing may write to stdout or stderr after startup.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Open creates a zerolog logger appending to the given file. The caller
// owns the returned file handle.
func Open(path, level string) (zerolog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := zerolog.New(f).Level(ParseLevel(level)).With().Timestamp().Logger()
	return logger, f, nil
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
