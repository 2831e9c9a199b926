// ABOUTME: CSV-backed ledger of calculation records.
// ABOUTME: Owns the in-memory record sequence for the process and its load/save lifecycle.
package history

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/abacus-cli/abacus/internal/models"
)

// header is the fixed column set of the persistence file.
var header = []string{"timestamp", "operation", "inputs", "result"}

// Ledger is the in-process owner of the calculation history. One ledger is
// created per run and shared by reference; it is not safe for concurrent use.
type Ledger struct {
	path    string
	logger  *slog.Logger
	records []models.CalculationRecord
}

// NewLedger creates an empty ledger persisting to path. It does not touch
// the disk; call Load to pull in previously saved records.
func NewLedger(path string, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{path: path, logger: logger}
}

// Path returns the persistence file path.
func (l *Ledger) Path() string {
	return l.path
}

// Add appends a record stamped with the current time. The store only grows;
// nothing is written to disk until Save.
func (l *Ledger) Add(operation, inputs, result string) {
	rec := models.NewCalculationRecord(operation, inputs, result)
	l.records = append(l.records, rec)
	l.logger.Info("calculation added to history",
		"operation", operation, "inputs", inputs, "result", result)
}

// List returns a copy of the records in insertion order. limit > 0 returns
// only the most recent limit records.
func (l *Ledger) List(limit int) []models.CalculationRecord {
	records := l.records
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	out := make([]models.CalculationRecord, len(records))
	copy(out, records)
	return out
}

// Match pairs a record with its absolute position in the history, so a
// search result can be deleted by the index it displays.
type Match struct {
	Index  int
	Record models.CalculationRecord
}

// Search returns records containing term in any field, case-insensitive,
// together with their absolute positions. limit > 0 returns only the most
// recent limit matches.
func (l *Ledger) Search(term string, limit int) []Match {
	termLower := strings.ToLower(term)
	var out []Match
	for i, rec := range l.records {
		for _, field := range []string{rec.Timestamp, rec.Operation, rec.Inputs, rec.Result} {
			if strings.Contains(strings.ToLower(field), termLower) {
				out = append(out, Match{Index: i, Record: rec})
				break
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Delete removes the record at index. Indices refer to current positional
// order; deleting shifts subsequent indices down by one. Out-of-range
// indices are rejected with a warning and the store is left unchanged.
func (l *Ledger) Delete(index int) bool {
	if index < 0 || index >= len(l.records) {
		l.logger.Warn("delete index out of range", "index", index, "records", len(l.records))
		return false
	}
	l.records = append(l.records[:index], l.records[index+1:]...)
	l.logger.Info("entry deleted from history", "index", index)
	return true
}

// Clear removes all records. It always succeeds.
func (l *Ledger) Clear() {
	l.records = nil
	l.logger.Info("history cleared")
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Load replaces the in-memory records with the persistence file contents.
// A missing file yields an empty ledger and no error. Any other failure
// also yields an empty ledger, so a corrupt history file never prevents the
// calculator from running; the error is returned for callers that report it.
func (l *Ledger) Load() error {
	l.records = nil

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Info("history file not found, starting empty", "path", l.path)
			return nil
		}
		l.logger.Warn("could not read history file", "path", l.path, "error", err)
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column counts are checked per row below

	rows, err := r.ReadAll()
	if err != nil {
		l.records = nil
		l.logger.Warn("could not parse history file", "path", l.path, "error", err)
		return fmt.Errorf("failed to parse history file: %w", err)
	}

	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		if len(row) != len(header) {
			l.logger.Warn("skipping malformed history row", "path", l.path, "line", i+1, "columns", len(row))
			continue
		}
		l.records = append(l.records, models.CalculationRecord{
			Timestamp: row[0],
			Operation: row[1],
			Inputs:    row[2],
			Result:    row[3],
		})
	}

	l.logger.Info("history loaded", "path", l.path, "records", len(l.records))
	return nil
}

// Save writes the full ledger to the persistence file, overwriting it. The
// parent directory is created if absent. A failed save never alters the
// in-memory records.
func (l *Ledger) Save() error {
	if dir := filepath.Dir(l.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			l.logger.Error("could not create history directory", "dir", dir, "error", err)
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	f, err := os.Create(l.path)
	if err != nil {
		l.logger.Error("could not create history file", "path", l.path, "error", err)
		return fmt.Errorf("failed to create history file: %w", err)
	}

	w := csv.NewWriter(f)
	werr := w.Write(header)
	for _, rec := range l.records {
		if werr != nil {
			break
		}
		werr = w.Write([]string{rec.Timestamp, rec.Operation, rec.Inputs, rec.Result})
	}
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		l.logger.Error("could not write history file", "path", l.path, "error", werr)
		return fmt.Errorf("failed to write history file: %w", werr)
	}

	l.logger.Info("history saved", "path", l.path, "records", len(l.records))
	return nil
}

// Close releases any resources held by the ledger.
func (l *Ledger) Close() error {
	return nil
}
