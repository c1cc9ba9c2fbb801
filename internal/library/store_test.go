package library

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/explainthis/internal/explain"
)

// fakeKV is an in-memory kv store with optional write failure injection.
type fakeKV struct {
	data     map[string]string
	setCalls int
	failSet  bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.setCalls++
	if f.failSet {
		return errors.New("disk full")
	}
	f.data[key] = value
	return nil
}

func record(id, concept string, level explain.Level, ts time.Time) explain.Explanation {
	return explain.Explanation{
		ID:        id,
		Concept:   concept,
		Level:     level,
		Timestamp: ts,
		Body: explain.Sections{
			Simple:          "a " + concept + " explanation",
			RelatedConcepts: []string{},
		},
		Category: explain.DefaultCategory,
	}
}

func seedKV(t *testing.T, kv *fakeKV, records []explain.Explanation) {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	kv.data[StorageKey] = string(data)
}

func TestOpen_EmptyLibrary(t *testing.T) {
	kv := newFakeKV()
	s, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty library, got %d records", s.Len())
	}
	if kv.setCalls != 0 {
		t.Error("opening an empty library must not write")
	}
}

func TestOpen_CorruptData(t *testing.T) {
	kv := newFakeKV()
	kv.data[StorageKey] = "{not json"
	if _, err := Open(context.Background(), kv); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestOpen_MigratesLevelCasing(t *testing.T) {
	kv := newFakeKV()
	seedKV(t, kv, []explain.Explanation{
		record("1", "API", explain.Level("Beginner"), time.Now()),
		record("2", "DNS", explain.LevelExpert, time.Now()),
	})

	s, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, ok := s.Get("1")
	if !ok {
		t.Fatal("record 1 missing")
	}
	if rec.Level != explain.LevelBeginner {
		t.Errorf("level = %q, want lowercase beginner", rec.Level)
	}
	if kv.setCalls != 1 {
		t.Errorf("expected exactly one migration write, got %d", kv.setCalls)
	}

	// Second open: nothing left to migrate, so no write.
	kv.setCalls = 0
	if _, err := Open(context.Background(), kv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kv.setCalls != 0 {
		t.Errorf("migration must be idempotent, got %d writes", kv.setCalls)
	}
}

func TestSave_PrependsNewest(t *testing.T) {
	kv := newFakeKV()
	s, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for _, rec := range []explain.Explanation{
		record("1", "API", explain.LevelBeginner, time.Now()),
		record("2", "DNS", explain.LevelBeginner, time.Now()),
	} {
		already, err := s.Save(ctx, rec)
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if already {
			t.Errorf("record %s reported as duplicate", rec.ID)
		}
	}

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].ID != "2" || all[1].ID != "1" {
		t.Errorf("expected newest-first order, got %s, %s", all[0].ID, all[1].ID)
	}
	if !all[0].Saved {
		t.Error("saved record must carry the Saved flag")
	}
}

func TestSave_DuplicateIsNoOp(t *testing.T) {
	kv := newFakeKV()
	s, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	rec := record("1", "API", explain.LevelBeginner, time.Now())
	if _, err := s.Save(ctx, rec); err != nil {
		t.Fatal(err)
	}
	writesBefore := kv.setCalls

	already, err := s.Save(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}
	if !already {
		t.Error("expected duplicate save to report alreadySaved")
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
	if kv.setCalls != writesBefore {
		t.Error("duplicate save must not persist")
	}
}

func TestSave_RollsBackOnPersistFailure(t *testing.T) {
	kv := newFakeKV()
	s, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}

	kv.failSet = true
	if _, err := s.Save(context.Background(), record("1", "API", explain.LevelBeginner, time.Now())); err == nil {
		t.Fatal("expected persist failure")
	}
	if s.Len() != 0 {
		t.Error("failed save must leave the collection untouched")
	}
}

func TestDelete(t *testing.T) {
	kv := newFakeKV()
	s, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		if _, err := s.Save(ctx, record(id, "C"+id, explain.LevelBeginner, time.Now())); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.Delete(ctx, "2"); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
	if _, ok := s.Get("2"); ok {
		t.Error("record 2 should be gone")
	}

	// Absent id: no-op, no write.
	writesBefore := kv.setCalls
	if err := s.Delete(ctx, "nope"); err != nil {
		t.Fatal(err)
	}
	if kv.setCalls != writesBefore {
		t.Error("deleting an absent id must not persist")
	}
	if s.Len() != 2 {
		t.Errorf("len changed on no-op delete")
	}
}

func TestDeleteMany_RollsBackOnPersistFailure(t *testing.T) {
	kv := newFakeKV()
	s, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, err := s.Save(ctx, record("1", "API", explain.LevelBeginner, time.Now())); err != nil {
		t.Fatal(err)
	}

	kv.failSet = true
	if err := s.DeleteMany(ctx, []string{"1"}); err == nil {
		t.Fatal("expected persist failure")
	}
	if s.Len() != 1 {
		t.Error("failed delete must leave the collection untouched")
	}
}

func TestQuery_SearchAndSort(t *testing.T) {
	kv := newFakeKV()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedKV(t, kv, []explain.Explanation{
		record("1", "Zebra Pattern", explain.LevelBeginner, base.Add(2*time.Hour)),
		record("2", "API", explain.LevelExpert, base.Add(1*time.Hour)),
		record("3", "Middleware", explain.LevelBeginner, base.Add(3*time.Hour)),
	})

	s, err := Open(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("no filter newest first", func(t *testing.T) {
		got := s.Query("", SortNewest)
		if len(got) != 3 || got[0].ID != "3" || got[2].ID != "2" {
			t.Errorf("unexpected order: %v", ids(got))
		}
	})

	t.Run("oldest first", func(t *testing.T) {
		got := s.Query("", SortOldest)
		if got[0].ID != "2" || got[2].ID != "3" {
			t.Errorf("unexpected order: %v", ids(got))
		}
	})

	t.Run("alphabetical", func(t *testing.T) {
		got := s.Query("", SortAlphaAsc)
		if got[0].Concept != "API" || got[2].Concept != "Zebra Pattern" {
			t.Errorf("unexpected order: %v", ids(got))
		}
		got = s.Query("", SortAlphaDesc)
		if got[0].Concept != "Zebra Pattern" {
			t.Errorf("unexpected order: %v", ids(got))
		}
	})

	t.Run("search by concept", func(t *testing.T) {
		got := s.Query("middle", SortNewest)
		if len(got) != 1 || got[0].ID != "3" {
			t.Errorf("unexpected results: %v", ids(got))
		}
	})

	t.Run("search by level", func(t *testing.T) {
		got := s.Query("expert", SortNewest)
		if len(got) != 1 || got[0].ID != "2" {
			t.Errorf("unexpected results: %v", ids(got))
		}
	})

	t.Run("search by explanation text", func(t *testing.T) {
		got := s.Query("zebra pattern explanation", SortNewest)
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("unexpected results: %v", ids(got))
		}
	})

	t.Run("query does not mutate stored order", func(t *testing.T) {
		_ = s.Query("", SortAlphaAsc)
		all := s.All()
		if all[0].ID != "1" {
			t.Errorf("stored order changed: %v", ids(all))
		}
	})
}

func ids(records []explain.Explanation) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
