// ABOUTME: Root Cobra command and shared state for the abacus CLI.
// ABOUTME: Sets up lifecycle hooks for config loading, logging, and the history ledger.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abacus-cli/abacus/internal/config"
	"github.com/abacus-cli/abacus/internal/history"
	"github.com/abacus-cli/abacus/internal/logging"
	"github.com/abacus-cli/abacus/internal/ops"
)

// One ledger exists per run, created in PersistentPreRunE and shared by
// reference with every command handler.
var globalLogger *slog.Logger
var globalLedger *history.Ledger
var globalOps = ops.NewRegistry()

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "A calculator that remembers",
	Long: `
 █████╗ ██████╗  █████╗  ██████╗██╗   ██╗███████╗
██╔══██╗██╔══██╗██╔══██╗██╔════╝██║   ██║██╔════╝
███████║██████╔╝███████║██║     ██║   ██║███████╗
██╔══██║██╔══██╗██╔══██║██║     ██║   ██║╚════██║
██║  ██║██████╔╝██║  ██║╚██████╗╚██████╔╝███████║
╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚══════╝

A command-line calculator that records every computation
to a persisted history file.`,
	Version: "1.0.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "help", "version", "setup", "completion":
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logFile, err := cfg.LogFilePath()
		if err != nil {
			return fmt.Errorf("failed to resolve log file path: %w", err)
		}
		logger, err := logging.Setup(cfg.Log.Level, logFile)
		if err != nil {
			// Diagnostics must never stop the calculator; the fallback
			// logger writes to stderr.
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		globalLogger = logger

		historyFile, err := cfg.HistoryFilePath()
		if err != nil {
			return fmt.Errorf("failed to resolve history file path: %w", err)
		}
		globalLedger = history.NewLedger(historyFile, logger)

		// A missing or corrupt history file is already logged by Load and
		// leaves an empty ledger; startup proceeds either way.
		_ = globalLedger.Load()

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalLedger != nil {
			_ = globalLedger.Close()
			globalLedger = nil
		}
		return nil
	},
}
