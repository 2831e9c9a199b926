// ABOUTME: Tests for history MCP tool handlers.
// ABOUTME: Covers list, search, delete, clear, and save tools.
package mcp

import (
	"strings"
	"testing"
)

func addCalculations(t *testing.T, s *Server) {
	t.Helper()
	for _, c := range []struct {
		op       string
		operands []float64
	}{
		{"add", []float64{2, 3}},
		{"subtract", []float64{5, 3}},
		{"multiply", []float64{2, 2}},
	} {
		result := callTool(t, s, "calculate", map[string]interface{}{
			"operation": c.op,
			"operands":  c.operands,
		})
		if result.IsError {
			t.Fatalf("calculate(%s) error: %s", c.op, getTextContent(result))
		}
	}
}

func TestListHistoryEmpty(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "list_history", map[string]interface{}{})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	if !strings.Contains(getTextContent(result), "No calculation history") {
		t.Errorf("expected empty-history message, got: %s", getTextContent(result))
	}
}

func TestListHistoryReturnsRecords(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "list_history", map[string]interface{}{})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}

	text := getTextContent(result)
	for _, want := range []string{"0. [", "add [2, 3] = 5", "subtract [5, 3] = 2", "multiply [2, 2] = 4"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in listing, got: %s", want, text)
		}
	}
}

func TestListHistoryLimitKeepsAbsoluteIndices(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "list_history", map[string]interface{}{"limit": 1})
	text := getTextContent(result)

	if !strings.Contains(text, "2. [") {
		t.Errorf("expected absolute index 2 for the last record, got: %s", text)
	}
	if strings.Contains(text, "add [2, 3]") {
		t.Errorf("limit 1 should only return the most recent record, got: %s", text)
	}
}

func TestSearchHistory(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "search_history", map[string]interface{}{"term": "SUBTRACT"})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	text := getTextContent(result)
	if !strings.Contains(text, "subtract") {
		t.Errorf("expected subtract match, got: %s", text)
	}
	if strings.Contains(text, "multiply") {
		t.Errorf("unexpected multiply match, got: %s", text)
	}
}

func TestSearchHistoryIndexUsableWithDelete(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "search_history", map[string]interface{}{"term": "multiply"})
	text := getTextContent(result)
	if !strings.Contains(text, "2. [") {
		t.Fatalf("expected absolute index 2 for the multiply record, got: %s", text)
	}

	// Deleting by the displayed index removes the matched record.
	result = callTool(t, s, "delete_entry", map[string]interface{}{"index": 2})
	if result.IsError {
		t.Fatalf("delete_entry(2) error: %s", getTextContent(result))
	}
	for _, rec := range s.ledger.List(0) {
		if rec.Operation == "multiply" {
			t.Errorf("multiply record still present after deleting by its search index")
		}
	}
}

func TestSearchHistoryLimit(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	// All three records match on the timestamp's date portion; a limit of 1
	// returns only the most recent, with its absolute index.
	result := callTool(t, s, "search_history", map[string]interface{}{"term": "-", "limit": 1})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	text := getTextContent(result)
	if !strings.Contains(text, "2. [") {
		t.Errorf("expected absolute index 2 for the most recent match, got: %s", text)
	}
	if strings.Contains(text, "add [2, 3]") || strings.Contains(text, "subtract [5, 3]") {
		t.Errorf("limit 1 should only return the most recent match, got: %s", text)
	}
}

func TestSearchHistoryRequiresTerm(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "search_history", map[string]interface{}{})
	if !result.IsError {
		t.Error("expected error when term is missing")
	}
}

func TestSearchHistoryNoMatches(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "search_history", map[string]interface{}{"term": "cosine"})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	if !strings.Contains(getTextContent(result), "No matches") {
		t.Errorf("expected no-matches message, got: %s", getTextContent(result))
	}
}

func TestDeleteEntry(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "delete_entry", map[string]interface{}{"index": 1})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}

	if s.ledger.Len() != 2 {
		t.Errorf("ledger has %d records after delete, want 2", s.ledger.Len())
	}
	records := s.ledger.List(0)
	if records[0].Operation != "add" || records[1].Operation != "multiply" {
		t.Errorf("unexpected records after delete: %+v", records)
	}
}

func TestDeleteEntryOutOfRange(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	for _, index := range []int{-1, 3, 100} {
		result := callTool(t, s, "delete_entry", map[string]interface{}{"index": index})
		if !result.IsError {
			t.Errorf("expected error for index %d", index)
		}
	}
	if s.ledger.Len() != 3 {
		t.Errorf("ledger altered by rejected deletes: %d records, want 3", s.ledger.Len())
	}
}

func TestDeleteEntryRequiresIndex(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "delete_entry", map[string]interface{}{})
	if !result.IsError {
		t.Error("expected error when index is missing")
	}
	// A missing index must not silently delete entry 0.
	if s.ledger.Len() != 3 {
		t.Errorf("ledger altered by rejected delete: %d records, want 3", s.ledger.Len())
	}
}

func TestClearHistory(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "clear_history", map[string]interface{}{})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	if s.ledger.Len() != 0 {
		t.Errorf("ledger has %d records after clear, want 0", s.ledger.Len())
	}
}

func TestSaveHistory(t *testing.T) {
	s := makeServer(t)
	addCalculations(t, s)

	result := callTool(t, s, "save_history", map[string]interface{}{})
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(result))
	}
	if !strings.Contains(getTextContent(result), "3 records") {
		t.Errorf("expected record count in response, got: %s", getTextContent(result))
	}
}
