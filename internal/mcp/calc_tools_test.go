// ABOUTME: Tests for the calculate MCP tool handler.
// ABOUTME: Covers successful calculations, domain errors, and argument validation.
package mcp

import (
	"strings"
	"testing"
)

func TestCalculateValid(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "calculate", map[string]interface{}{
		"operation": "add",
		"operands":  []float64{2, 3},
	})

	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	text := getTextContent(result)
	if !strings.Contains(text, "2 + 3 = 5") {
		t.Errorf("expected '2 + 3 = 5' in response, got: %s", text)
	}

	// The calculation must be recorded.
	if s.ledger.Len() != 1 {
		t.Errorf("ledger has %d records after calculate, want 1", s.ledger.Len())
	}
	rec := s.ledger.List(0)[0]
	if rec.Operation != "add" || rec.Inputs != "[2, 3]" || rec.Result != "5" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestCalculateDivisionByZero(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "calculate", map[string]interface{}{
		"operation": "divide",
		"operands":  []float64{5, 0},
	})

	if !result.IsError {
		t.Fatal("expected error for division by zero")
	}
	if !strings.Contains(getTextContent(result), "division by zero") {
		t.Errorf("expected division by zero message, got: %s", getTextContent(result))
	}

	// Failed computations are never recorded.
	if s.ledger.Len() != 0 {
		t.Errorf("ledger has %d records after failed calculation, want 0", s.ledger.Len())
	}
}

func TestCalculateUnknownOperation(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "calculate", map[string]interface{}{
		"operation": "sqrt",
		"operands":  []float64{4, 0},
	})

	if !result.IsError {
		t.Fatal("expected error for unknown operation")
	}
	if !strings.Contains(getTextContent(result), "unknown operation") {
		t.Errorf("expected unknown operation message, got: %s", getTextContent(result))
	}
}

func TestCalculateRequiresOperation(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "calculate", map[string]interface{}{
		"operands": []float64{1, 2},
	})

	if !result.IsError {
		t.Error("expected error when operation is missing")
	}
}

func TestCalculateRequiresTwoOperands(t *testing.T) {
	s := makeServer(t)

	for _, operands := range [][]float64{{}, {1}, {1, 2, 3}} {
		result := callTool(t, s, "calculate", map[string]interface{}{
			"operation": "add",
			"operands":  operands,
		})
		if !result.IsError {
			t.Errorf("expected error for %d operands", len(operands))
		}
	}
}

func TestListOperations(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "list_operations", map[string]interface{}{})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}

	text := getTextContent(result)
	for _, name := range []string{"add", "subtract", "multiply", "divide", "power", "mod"} {
		if !strings.Contains(text, name) {
			t.Errorf("expected %q in operations list, got: %s", name, text)
		}
	}
}
