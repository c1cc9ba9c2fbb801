package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/explainthis/internal/explain"
)

func rec(id string, level explain.Level, saved bool, ts time.Time) explain.Explanation {
	return explain.Explanation{
		ID:        id,
		Concept:   "Concept " + id,
		Level:     level,
		Saved:     saved,
		Timestamp: ts,
	}
}

func TestCompute_EmptyLibrary(t *testing.T) {
	stats := Compute(nil)

	if stats.TotalConcepts != 0 || stats.SavedCount != 0 {
		t.Errorf("expected zero counts, got %+v", stats)
	}
	if stats.FavoriteLevel != "" {
		t.Errorf("favorite level = %q, want empty", stats.FavoriteLevel)
	}
	if stats.ByLevel == nil || len(stats.ByLevel) != 0 {
		t.Errorf("expected empty non-nil level map, got %v", stats.ByLevel)
	}
	if stats.RecentActivity == nil || len(stats.RecentActivity) != 0 {
		t.Errorf("expected empty non-nil recent slice, got %v", stats.RecentActivity)
	}
}

func TestCompute_Counts(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []explain.Explanation{
		rec("1", explain.LevelBeginner, true, base),
		rec("2", explain.LevelBeginner, false, base.Add(time.Hour)),
		rec("3", explain.LevelExpert, true, base.Add(2*time.Hour)),
	}

	stats := Compute(records)

	if stats.TotalConcepts != 3 {
		t.Errorf("total = %d, want 3", stats.TotalConcepts)
	}
	if stats.SavedCount != 2 {
		t.Errorf("saved = %d, want 2", stats.SavedCount)
	}
	if stats.ByLevel[explain.LevelBeginner] != 2 || stats.ByLevel[explain.LevelExpert] != 1 {
		t.Errorf("by level = %v", stats.ByLevel)
	}
	if stats.FavoriteLevel != explain.LevelBeginner {
		t.Errorf("favorite = %q, want beginner", stats.FavoriteLevel)
	}
}

func TestCompute_FavoriteLevelTieBreak(t *testing.T) {
	base := time.Now()
	// expert appears first in the collection; tie goes to it.
	records := []explain.Explanation{
		rec("1", explain.LevelExpert, false, base),
		rec("2", explain.LevelBeginner, false, base),
		rec("3", explain.LevelExpert, false, base),
		rec("4", explain.LevelBeginner, false, base),
	}

	stats := Compute(records)
	if stats.FavoriteLevel != explain.LevelExpert {
		t.Errorf("favorite = %q, want expert (first encountered)", stats.FavoriteLevel)
	}
}

func TestCompute_RecentActivity(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var records []explain.Explanation
	for i := 0; i < 15; i++ {
		records = append(records, rec(
			fmt.Sprintf("%d", i),
			explain.LevelIntermediate,
			false,
			base.Add(time.Duration(i)*time.Hour),
		))
	}

	stats := Compute(records)

	if len(stats.RecentActivity) != RecentActivityLimit {
		t.Fatalf("recent = %d records, want %d", len(stats.RecentActivity), RecentActivityLimit)
	}
	if stats.RecentActivity[0].ID != "14" {
		t.Errorf("expected newest first, got %q", stats.RecentActivity[0].ID)
	}
	if stats.RecentActivity[9].ID != "5" {
		t.Errorf("expected oldest kept record to be 5, got %q", stats.RecentActivity[9].ID)
	}

	// Input order must be untouched.
	if records[0].ID != "0" {
		t.Error("Compute mutated its input")
	}
}
