// ABOUTME: Structured logging setup for abacus using slog.
// ABOUTME: Parses the configured level and directs text records to the log file.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a configured level name to a slog level. Unknown names
// fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// KnownLevel reports whether name is a recognized level name.
func KnownLevel(name string) bool {
	switch strings.ToLower(name) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// Setup configures a logger writing text records to the given file, creating
// parent directories as needed. If the file cannot be opened the returned
// logger writes to stderr and the error describes why; diagnostics must
// never stop the calculator from running.
func Setup(level, file string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if dir := filepath.Dir(file); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return slog.New(slog.NewTextHandler(os.Stderr, opts)),
				fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0640)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)),
			fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewTextHandler(f, opts)), nil
}
