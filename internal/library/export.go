package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/explainthis/internal/explain"
)

// Export writes the library to path as a portable JSON array, the same
// shape the store persists internally.
func (s *Store) Export(path string) error {
	s.mu.Lock()
	records := s.snapshot()
	s.mu.Unlock()

	if records == nil {
		records = []explain.Explanation{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ImportResult reports what an Import did.
type ImportResult struct {
	Added   int // records merged into the library
	Skipped int // records whose id was already present
}

// Import merges records from a previously exported JSON file. The file
// is schema-validated before anything is touched; records whose id is
// already in the library are skipped. Imported records keep their
// stored order and are appended after existing ones, so current saves
// stay newest-first.
func (s *Store) Import(ctx context.Context, path string) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read import: %w", err)
	}

	if err := validateImport(data); err != nil {
		return ImportResult{}, fmt.Errorf("import %s: %w", path, err)
	}

	var incoming []explain.Explanation
	if err := json.Unmarshal(data, &incoming); err != nil {
		return ImportResult{}, fmt.Errorf("decode import: %w", err)
	}
	normalizeLevels(incoming)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.records))
	for _, rec := range s.records {
		existing[rec.ID] = true
	}

	var res ImportResult
	prev := s.records
	for _, rec := range incoming {
		if existing[rec.ID] {
			res.Skipped++
			continue
		}
		rec.Saved = true
		s.records = append(s.records, rec)
		existing[rec.ID] = true
		res.Added++
	}

	if res.Added == 0 {
		return res, nil
	}
	if err := s.persist(ctx); err != nil {
		s.records = prev
		return ImportResult{}, err
	}
	return res, nil
}
