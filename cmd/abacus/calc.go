// ABOUTME: CLI commands for arithmetic operations, generated from the registry.
// ABOUTME: Each command computes, prints, records to history, and saves.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abacus-cli/abacus/internal/models"
)

func init() {
	for _, name := range globalOps.Names() {
		op, err := globalOps.Get(name)
		if err != nil {
			continue
		}
		rootCmd.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("%s <a> <b>", op.Name),
			Short: op.Short,
			Args:  cobra.ExactArgs(2),
			RunE:  runCalculation(op.Name),
		})
	}

	rootCmd.AddCommand(opsCmd)
}

// runCalculation builds the handler for one arithmetic command.
func runCalculation(name string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid operand %q", args[0])
		}
		b, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid operand %q", args[1])
		}

		op, err := globalOps.Get(name)
		if err != nil {
			return err
		}

		result, err := op.Apply(a, b)
		if err != nil {
			// Domain failures are reported and logged, never recorded.
			globalLogger.Warn("calculation failed", "operation", name, "error", err)
			return err
		}

		inputs := models.FormatOperands([]float64{a, b})
		rendered := models.FormatNumber(result)
		globalLedger.Add(op.Name, inputs, rendered)

		fmt.Printf("%s %s %s = %s\n",
			models.FormatNumber(a), op.Symbol, models.FormatNumber(b), rendered)

		if err := globalLedger.Save(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save history: %v\n", err)
		}
		return nil
	}
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List available operations",
	Long:  "List the arithmetic operations this calculator supports.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Available operations:")
		for _, name := range globalOps.Names() {
			op, err := globalOps.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("  %-10s %s  %s\n", op.Name, op.Symbol, op.Short)
		}
		return nil
	},
}
