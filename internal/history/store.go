// ABOUTME: Interface definition for calculation history storage.
// ABOUTME: Defines the contract for recording, listing, and persisting calculations.
package history

import (
	"github.com/abacus-cli/abacus/internal/models"
)

// Store defines operations for calculation history.
type Store interface {
	// Add appends a record with the current timestamp. In-memory only.
	Add(operation, inputs, result string)

	// List returns a copy of the records in insertion order.
	// limit > 0 returns only the most recent limit records.
	List(limit int) []models.CalculationRecord

	// Search returns records containing term in any field, case-insensitive,
	// paired with their absolute positions. limit > 0 returns only the most
	// recent limit matches.
	Search(term string, limit int) []Match

	// Delete removes the record at index. Returns false if index is out of
	// range, leaving the store unchanged.
	Delete(index int) bool

	// Clear removes all records.
	Clear()

	// Len returns the number of records.
	Len() int

	// Load replaces the in-memory records with the persistence file contents.
	Load() error

	// Save writes all records to the persistence file, overwriting it.
	Save() error

	// Close releases any resources held by the store.
	Close() error
}
