package library

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/explainthis/internal/explain"
)

// StorageKey is the fixed kv key holding the serialized library.
const StorageKey = "library"

// kvStore is the slice of the kv repo the library needs.
type kvStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the user's saved explanations: an ordered collection,
// newest-first by insertion, persisted synchronously as one JSON array
// under StorageKey. The in-memory collection and the persisted copy
// never diverge after a completed operation.
//
// All operations hold the store mutex, so check-then-write sequences
// (Save's duplicate check) are a single critical section.
type Store struct {
	mu      sync.Mutex
	kv      kvStore
	records []explain.Explanation
}

// Open loads the persisted collection and runs the one-shot level-casing
// normalization. An absent key yields an empty library.
func Open(ctx context.Context, kv kvStore) (*Store, error) {
	s := &Store{kv: kv}

	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.records); err != nil {
			return nil, fmt.Errorf("decode library: %w", err)
		}
	}

	// One-shot migration: older records stored levels with arbitrary
	// casing. Persist immediately, but only when something changed.
	if normalizeLevels(s.records) {
		if err := s.persist(ctx); err != nil {
			return nil, fmt.Errorf("persist level migration: %w", err)
		}
	}

	return s, nil
}

// Len returns the number of saved records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// All returns a copy of the collection in stored order (newest-first by
// insertion).
func (s *Store) All() []explain.Explanation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (explain.Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return explain.Explanation{}, false
}

// Save adds a record to the library with Saved set, prepending it so the
// newest save comes first. If the id is already present the collection
// is untouched and alreadySaved is true; the duplicate check and the
// prepend happen under one mutex hold, so concurrent saves of the same
// id cannot both report a fresh save.
func (s *Store) Save(ctx context.Context, rec explain.Explanation) (alreadySaved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.ID == rec.ID {
			return true, nil
		}
	}

	rec.Saved = true
	s.records = append([]explain.Explanation{rec}, s.records...)

	if err := s.persist(ctx); err != nil {
		// Roll back so memory and disk stay in sync.
		s.records = s.records[1:]
		return false, err
	}
	return false, nil
}

// Delete removes the record with the matching id. Deleting an absent id
// is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.DeleteMany(ctx, []string{id})
}

// DeleteMany removes all records whose id is in ids.
func (s *Store) DeleteMany(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	kept := s.records[:0:0]
	for _, rec := range s.records {
		if !doomed[rec.ID] {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(s.records) {
		return nil // nothing removed, nothing to persist
	}

	prev := s.records
	s.records = kept
	if err := s.persist(ctx); err != nil {
		s.records = prev
		return err
	}
	return nil
}

// Query returns a filtered, sorted view without mutating stored order.
// The search term matches case-insensitively against the concept title,
// the simple explanation, and the level.
func (s *Store) Query(search string, sort SortKey) []explain.Explanation {
	s.mu.Lock()
	view := s.snapshot()
	s.mu.Unlock()

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		filtered := view[:0]
		for _, rec := range view {
			if strings.Contains(strings.ToLower(rec.Concept), term) ||
				strings.Contains(strings.ToLower(rec.Body.Simple), term) ||
				strings.Contains(strings.ToLower(string(rec.Level)), term) {
				filtered = append(filtered, rec)
			}
		}
		view = filtered
	}

	sortRecords(view, sort)
	return view
}

func (s *Store) snapshot() []explain.Explanation {
	out := make([]explain.Explanation, len(s.records))
	copy(out, s.records)
	return out
}

// persist writes the collection under StorageKey. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	records := s.records
	if records == nil {
		records = []explain.Explanation{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("persist library: %w", err)
	}
	return nil
}
