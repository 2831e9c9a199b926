// ABOUTME: MCP server initialization and configuration for abacus.
// ABOUTME: Sets up the server with calculator and history tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/abacus-cli/abacus/internal/history"
	"github.com/abacus-cli/abacus/internal/ops"
)

// Server wraps the MCP server with the calculation ledger and operation registry.
type Server struct {
	mcp    *gomcp.Server
	ledger history.Store
	ops    *ops.Registry
}

// NewServer creates an MCP server exposing calculator and history tools.
func NewServer(ledger history.Store, registry *ops.Registry) (*Server, error) {
	if ledger == nil {
		return nil, fmt.Errorf("history store is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("operation registry is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "abacus",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:    mcpServer,
		ledger: ledger,
		ops:    registry,
	}

	s.registerCalcTools()
	s.registerHistoryTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// toolText creates a plain text result for MCP tool responses.
func toolText(text string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: text}},
	}
}
