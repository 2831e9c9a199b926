// ABOUTME: Core data model for calculation records kept in history.
// ABOUTME: Provides the record constructor and operand/result rendering helpers.
package models

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the format used for record timestamps, both in memory
// and in the persistence file.
const TimestampLayout = "2006-01-02 15:04:05"

// CalculationRecord is one logged calculation.
type CalculationRecord struct {
	Timestamp string // creation time, TimestampLayout format
	Operation string // operation name, e.g. "add"
	Inputs    string // rendering of the operands, e.g. "[2, 3]"
	Result    string // rendering of the computed output
}

// NewCalculationRecord creates a record stamped with the current time.
// The timestamp is assigned here and never mutated afterward.
func NewCalculationRecord(operation, inputs, result string) CalculationRecord {
	return CalculationRecord{
		Timestamp: time.Now().Format(TimestampLayout),
		Operation: operation,
		Inputs:    inputs,
		Result:    result,
	}
}

// FormatNumber renders a float in its shortest exact form ("5" rather than
// "5.000000") so records stay readable and round-trip through the CSV file.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatOperands renders operands as a bracketed list, e.g. "[2, 3]".
func FormatOperands(operands []float64) string {
	parts := make([]string, len(operands))
	for i, v := range operands {
		parts[i] = FormatNumber(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ValidTimestamp reports whether s is a well-formed record timestamp.
func ValidTimestamp(s string) bool {
	_, err := time.Parse(TimestampLayout, s)
	return err == nil
}
