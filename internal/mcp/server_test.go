// ABOUTME: Tests for MCP server creation and shared test helpers.
// ABOUTME: Verifies the server requires a history store and an operation registry.
package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/abacus-cli/abacus/internal/history"
	"github.com/abacus-cli/abacus/internal/ops"
)

func makeServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calculation_history.csv")
	ledger := history.NewLedger(path, slog.New(slog.NewTextHandler(io.Discard, nil)))

	server, err := NewServer(ledger, ops.NewRegistry())
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return server
}

func callTool(t *testing.T, s *Server, name string, args interface{}) *gomcp.CallToolResult {
	t.Helper()
	argsJSON, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}

	req := &gomcp.CallToolRequest{
		Params: &gomcp.CallToolParamsRaw{
			Name:      name,
			Arguments: argsJSON,
		},
	}

	ctx := context.Background()

	var result *gomcp.CallToolResult
	switch name {
	case "calculate":
		result, err = s.handleCalculate(ctx, req)
	case "list_operations":
		result, err = s.handleListOperations(ctx, req)
	case "list_history":
		result, err = s.handleListHistory(ctx, req)
	case "search_history":
		result, err = s.handleSearchHistory(ctx, req)
	case "delete_entry":
		result, err = s.handleDeleteEntry(ctx, req)
	case "clear_history":
		result, err = s.handleClearHistory(ctx, req)
	case "save_history":
		result, err = s.handleSaveHistory(ctx, req)
	default:
		t.Fatalf("unknown tool %q", name)
	}
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return result
}

func getTextContent(result *gomcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if tc, ok := result.Content[0].(*gomcp.TextContent); ok {
		return tc.Text
	}
	return ""
}

func TestNewServerRequiresStore(t *testing.T) {
	_, err := NewServer(nil, ops.NewRegistry())
	if err == nil {
		t.Error("expected error when history store is nil")
	}
}

func TestNewServerRequiresRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	ledger := history.NewLedger(path, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := NewServer(ledger, nil)
	if err == nil {
		t.Error("expected error when registry is nil")
	}
}

func TestNewServerSuccess(t *testing.T) {
	server := makeServer(t)
	if server == nil {
		t.Error("expected non-nil server")
	}
}
