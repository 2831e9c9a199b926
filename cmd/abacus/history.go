// ABOUTME: CLI commands for calculation history operations.
// ABOUTME: Provides list, search, delete, clear, and save subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abacus-cli/abacus/internal/models"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage calculation history",
	Long:  "List, search, delete, clear, and save recorded calculations.",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded calculations",
	Long:  "List calculations in insertion order, optionally limited to the most recent.",
	RunE:  runHistoryList,
}

var historySearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search calculation history",
	Long:  "Search history with a case-insensitive substring match over all fields.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistorySearch,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a history entry",
	Long:  "Delete the entry at the given zero-based index. Subsequent indices shift down by one.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all history entries",
	RunE:  runHistoryClear,
}

var historySaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write history to the persistence file",
	RunE:  runHistorySave,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historySaveCmd)

	historyListCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show only the most recent N entries (0 = all)")
	historySearchCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show only the most recent N matches (0 = all)")
}

// printRecords renders records with their positional indices, the form used
// for index-based deletion.
func printRecords(records []models.CalculationRecord, offset int) {
	for i, rec := range records {
		fmt.Printf("%d. [%s] %s %s = %s\n", offset+i, rec.Timestamp, rec.Operation, rec.Inputs, rec.Result)
	}
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	records := globalLedger.List(historyLimit)
	if len(records) == 0 {
		fmt.Println("No calculation history found.")
		return nil
	}

	fmt.Println(historyListHeader(len(records), globalLedger.Len()))
	printRecords(records, globalLedger.Len()-len(records))
	return nil
}

// historyListHeader mentions the total only when a limit trimmed the listing.
func historyListHeader(shown, total int) string {
	if shown == total {
		return fmt.Sprintf("Calculation history (showing %d records):", shown)
	}
	return fmt.Sprintf("Calculation history (showing %d of %d records):", shown, total)
}

func runHistorySearch(cmd *cobra.Command, args []string) error {
	term := args[0]

	matches := globalLedger.Search(term, historyLimit)
	if len(matches) == 0 {
		fmt.Printf("No matches found for %q.\n", term)
		return nil
	}

	// Matches carry their absolute positions so the printed index can be
	// passed straight to delete.
	fmt.Printf("Search results for %q (%d matches):\n", term, len(matches))
	for _, m := range matches {
		fmt.Printf("%d. [%s] %s %s = %s\n",
			m.Index, m.Record.Timestamp, m.Record.Operation, m.Record.Inputs, m.Record.Result)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	if !globalLedger.Delete(index) {
		return fmt.Errorf("failed to delete entry at index %d: index out of range (history has %d entries)",
			index, globalLedger.Len())
	}

	fmt.Printf("Deleted entry at index %d.\n", index)
	if err := globalLedger.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save history: %v\n", err)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	globalLedger.Clear()
	fmt.Println("History cleared.")

	if err := globalLedger.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save history: %v\n", err)
	}
	return nil
}

func runHistorySave(cmd *cobra.Command, args []string) error {
	if err := globalLedger.Save(); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	fmt.Printf("History saved to %s (%d records).\n", globalLedger.Path(), globalLedger.Len())
	return nil
}
