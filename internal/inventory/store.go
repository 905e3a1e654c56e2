// Package inventory owns the mutable crop record list. The stage engine
// never touches this store; it only receives snapshots of it.
package inventory

import (
	"errors"
	"sync"

	"github.com/farmos/crop-service/internal/stage"
)

// ErrNotFound is returned when a record index is out of range.
var ErrNotFound = errors.New("crop record not found")

// Store is a concurrency-safe in-memory crop record list. Records are
// addressed by position, matching the row-oriented editing model of the
// inventory screen.
type Store struct {
	mu      sync.RWMutex
	records []stage.CropRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore creates a store pre-populated with the demo farm records.
func NewSeededStore() *Store {
	return &Store{records: []stage.CropRecord{
		{Name: "Sweet Corn", Planted: "2025-11-15", Quantity: "600 seedlings", Area: "4150 m²", RainfallMm: 45},
		{Name: "Beetroot", Planted: "2025-11-30", Quantity: "200 seedlings", Area: "420 m²", RainfallMm: 12},
		{Name: "Cabbages", Planted: "2025-08-05", Quantity: "500 heads", Area: "1200 m²"},
		{Name: "Onions", Planted: "2025-06-28", Quantity: "15 kg", Area: "3238 m²"},
	}}
}

// List returns a copy of the current records.
func (s *Store) List() []stage.CropRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]stage.CropRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Add appends a record and returns its index.
func (s *Store) Add(rec stage.CropRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	return len(s.records) - 1
}

// Get returns the record at index.
func (s *Store) Get(index int) (stage.CropRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.records) {
		return stage.CropRecord{}, ErrNotFound
	}
	return s.records[index], nil
}

// Update replaces the record at index.
func (s *Store) Update(index int, rec stage.CropRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.records) {
		return ErrNotFound
	}
	s.records[index] = rec
	return nil
}

// Delete removes the record at index, shifting later records down.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.records) {
		return ErrNotFound
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	return nil
}

// Replace swaps the entire record list, as the bulk-save of the inventory
// editor does.
func (s *Store) Replace(records []stage.CropRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]stage.CropRecord, len(records))
	copy(s.records, records)
}
