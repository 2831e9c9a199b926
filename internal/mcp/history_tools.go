// ABOUTME: MCP tool implementations for calculation history operations.
// ABOUTME: Registers list_history, search_history, delete_entry, clear_history, save_history.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/abacus-cli/abacus/internal/history"
	"github.com/abacus-cli/abacus/internal/models"
)

func (s *Server) registerHistoryTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_history",
		Description: "List recorded calculations in insertion order.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "number", "description": "Return only the most recent N records (default: all)"}
			}
		}`),
	}, s.handleListHistory)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "search_history",
		Description: "Search calculation history with a case-insensitive substring match over all fields. Matches are numbered with their absolute history positions, valid for delete_entry.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"term": {"type": "string", "description": "Search term"},
				"limit": {"type": "number", "description": "Return only the most recent N matches (default: all)"}
			},
			"required": ["term"]
		}`),
	}, s.handleSearchHistory)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "delete_entry",
		Description: "Delete the history entry at the given zero-based index. Subsequent indices shift down by one.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"index": {"type": "number", "description": "Zero-based position of the entry to delete"}
			},
			"required": ["index"]
		}`),
	}, s.handleDeleteEntry)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "clear_history",
		Description: "Remove all calculation history entries and save the empty history.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleClearHistory)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "save_history",
		Description: "Write the current calculation history to the persistence file.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleSaveHistory)
}

// formatRecords renders records with their positional indices, the form
// used for index-based deletion.
func formatRecords(records []models.CalculationRecord, offset int) string {
	var sb strings.Builder
	for i, rec := range records {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s %s = %s\n",
			offset+i, rec.Timestamp, rec.Operation, rec.Inputs, rec.Result))
	}
	return sb.String()
}

// formatMatches renders search matches with their absolute history
// positions, so the displayed indices are valid for delete_entry.
func formatMatches(matches []history.Match) string {
	var sb strings.Builder
	for _, m := range matches {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s %s = %s\n",
			m.Index, m.Record.Timestamp, m.Record.Operation, m.Record.Inputs, m.Record.Result))
	}
	return sb.String()
}

func (s *Server) handleListHistory(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Limit int `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	records := s.ledger.List(args.Limit)
	if len(records) == 0 {
		return toolText("No calculation history found."), nil
	}

	// When a limit trims the list, indices still refer to absolute positions.
	offset := s.ledger.Len() - len(records)
	return toolText(formatRecords(records, offset)), nil
}

func (s *Server) handleSearchHistory(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Term  string `json:"term"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if args.Term == "" {
		return toolError("term is required"), nil
	}

	matches := s.ledger.Search(args.Term, args.Limit)
	if len(matches) == 0 {
		return toolText(fmt.Sprintf("No matches found for %q.", args.Term)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Search results for %q (%d matches):\n", args.Term, len(matches)))
	sb.WriteString(formatMatches(matches))
	return toolText(sb.String()), nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Index *int `json:"index"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if args.Index == nil {
		return toolError("index is required"), nil
	}

	if !s.ledger.Delete(*args.Index) {
		return toolError("index %d is out of range (history has %d entries)", *args.Index, s.ledger.Len()), nil
	}

	text := fmt.Sprintf("Deleted entry at index %d.", *args.Index)
	if err := s.ledger.Save(); err != nil {
		text += fmt.Sprintf("\nWarning: failed to save history: %v", err)
	}
	return toolText(text), nil
}

func (s *Server) handleClearHistory(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	s.ledger.Clear()

	text := "History cleared."
	if err := s.ledger.Save(); err != nil {
		text += fmt.Sprintf("\nWarning: failed to save history: %v", err)
	}
	return toolText(text), nil
}

func (s *Server) handleSaveHistory(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	if err := s.ledger.Save(); err != nil {
		return toolError("failed to save history: %v", err), nil
	}
	return toolText(fmt.Sprintf("History saved (%d records).", s.ledger.Len())), nil
}
