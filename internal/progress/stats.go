// Package progress derives usage statistics from the library on demand.
// Nothing here is persisted; stats are recomputed on every read.
package progress

import (
	"sort"

	"github.com/abhisek/explainthis/internal/explain"
)

// RecentActivityLimit caps the recent-activity list.
const RecentActivityLimit = 10

// Stats summarizes the library for the progress view.
type Stats struct {
	TotalConcepts  int
	ByLevel        map[explain.Level]int
	SavedCount     int
	FavoriteLevel  explain.Level // empty when the library is empty
	RecentActivity []explain.Explanation
}

// Compute is a pure function of the current library collection.
func Compute(records []explain.Explanation) Stats {
	stats := Stats{
		ByLevel:        map[explain.Level]int{},
		RecentActivity: []explain.Explanation{},
	}
	if len(records) == 0 {
		return stats
	}

	stats.TotalConcepts = len(records)

	// Count by level, remembering first-encounter order so the
	// favorite-level tie-break is deterministic.
	var levelOrder []explain.Level
	for _, rec := range records {
		if _, seen := stats.ByLevel[rec.Level]; !seen {
			levelOrder = append(levelOrder, rec.Level)
		}
		stats.ByLevel[rec.Level]++
		if rec.Saved {
			stats.SavedCount++
		}
	}

	// Favorite level is the mode; ties go to the level encountered
	// first in the collection.
	best := -1
	for _, lvl := range levelOrder {
		if stats.ByLevel[lvl] > best {
			best = stats.ByLevel[lvl]
			stats.FavoriteLevel = lvl
		}
	}

	// The 10 most recent records by timestamp, newest first.
	recent := make([]explain.Explanation, len(records))
	copy(recent, records)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > RecentActivityLimit {
		recent = recent[:RecentActivityLimit]
	}
	stats.RecentActivity = recent

	return stats
}
