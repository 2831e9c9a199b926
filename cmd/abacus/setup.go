// ABOUTME: Cobra command for interactive abacus configuration.
// ABOUTME: Launches a bubbletea TUI wizard to collect and validate storage settings.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/abacus-cli/abacus/internal/config"
	"github.com/abacus-cli/abacus/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure history and logging",
	Long:  "Interactive wizard to configure the history file, log file, and log level.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := tui.NewSetupModel(
		cfg.History.File,
		cfg.Log.File,
		cfg.Log.Level,
	)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Println("Setup cancelled.")
		return nil
	}

	historyFile, logFile, logLevel := final.Result()
	cfg.History.File = historyFile
	cfg.Log.File = logFile
	cfg.Log.Level = logLevel

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		fmt.Println("Config saved successfully.")
	} else {
		fmt.Printf("Config saved to %s\n", configPath)
	}
	return nil
}
