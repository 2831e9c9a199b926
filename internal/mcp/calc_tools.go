// ABOUTME: MCP tool implementation for performing calculations.
// ABOUTME: Registers the calculate tool which records results to history.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/abacus-cli/abacus/internal/models"
)

func (s *Server) registerCalcTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "calculate",
		Description: "Perform an arithmetic operation on two operands. The result is recorded to the calculation history and saved. Operations: add, subtract, multiply, divide, power, mod.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"operation": {"type": "string", "description": "Operation name: add, subtract, multiply, divide, power, mod"},
				"operands": {"type": "array", "items": {"type": "number"}, "minItems": 2, "maxItems": 2, "description": "Exactly two operands"}
			},
			"required": ["operation", "operands"]
		}`),
	}, s.handleCalculate)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_operations",
		Description: "List the arithmetic operations this calculator supports.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListOperations)
}

func (s *Server) handleCalculate(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Operation string    `json:"operation"`
		Operands  []float64 `json:"operands"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Operation == "" {
		return toolError("operation is required"), nil
	}
	if len(args.Operands) != 2 {
		return toolError("exactly two operands are required, got %d", len(args.Operands)), nil
	}

	op, err := s.ops.Get(args.Operation)
	if err != nil {
		return toolError("%v. Available operations: %s", err, strings.Join(s.ops.Names(), ", ")), nil
	}

	result, err := op.Apply(args.Operands[0], args.Operands[1])
	if err != nil {
		// Domain failures are reported but never recorded.
		return toolError("%v", err), nil
	}

	s.ledger.Add(op.Name, models.FormatOperands(args.Operands), models.FormatNumber(result))

	text := fmt.Sprintf("%s %s %s = %s",
		models.FormatNumber(args.Operands[0]),
		op.Symbol,
		models.FormatNumber(args.Operands[1]),
		models.FormatNumber(result),
	)

	if err := s.ledger.Save(); err != nil {
		text += fmt.Sprintf("\nWarning: failed to save history: %v", err)
	}

	return toolText(text), nil
}

func (s *Server) handleListOperations(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var sb strings.Builder
	for _, name := range s.ops.Names() {
		op, err := s.ops.Get(name)
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", op.Name, op.Symbol, op.Short))
	}
	return toolText(sb.String()), nil
}
