// ABOUTME: Settings validation for the abacus setup wizard.
// ABOUTME: Checks that history and log paths are writable and the level parses.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abacus-cli/abacus/internal/config"
	"github.com/abacus-cli/abacus/internal/logging"
)

// ValidateSettings checks that both file paths can be created and written,
// and that the log level is a recognized name. The context allows
// cancellation when the user quits during validation.
func ValidateSettings(ctx context.Context, historyFile, logFile, logLevel string) error {
	if !logging.KnownLevel(logLevel) {
		return fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", logLevel)
	}

	for _, name := range []struct{ label, path string }{
		{"history file", historyFile},
		{"log file", logFile},
	} {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := checkWritable(name.path); err != nil {
			return fmt.Errorf("%s: %w", name.label, err)
		}
	}

	return nil
}

// checkWritable verifies the file at path can be created and opened for
// writing. The file is left in place (empty if it did not exist), matching
// what the calculator itself will do on first save.
func checkWritable(path string) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}
	if expanded == "" {
		return fmt.Errorf("path is empty")
	}

	if dir := filepath.Dir(expanded); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("cannot create directory: %w", err)
		}
	}

	f, err := os.OpenFile(expanded, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0640)
	if err != nil {
		return fmt.Errorf("cannot open for writing: %w", err)
	}
	return f.Close()
}
