package library

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abhisek/explainthis/internal/explain"
)

// SortKey selects the ordering of a library query.
type SortKey string

const (
	SortNewest    SortKey = "newest" // timestamp descending (default)
	SortOldest    SortKey = "oldest" // timestamp ascending
	SortAlphaAsc  SortKey = "az"     // concept A→Z
	SortAlphaDesc SortKey = "za"     // concept Z→A
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNewest, SortOldest, SortAlphaAsc, SortAlphaDesc:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (expected newest, oldest, az or za)", s)
	}
}

// collator provides locale-aware comparison for concept titles. The
// locale is fixed: a CLI has no browser locale to inherit.
var collator = collate.New(language.English, collate.IgnoreCase)

// sortRecords orders records in place. Stable, so records with equal
// timestamps keep their stored relative order.
func sortRecords(records []explain.Explanation, key SortKey) {
	switch key {
	case SortOldest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Timestamp.Before(records[j].Timestamp)
		})
	case SortAlphaAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(records[i].Concept, records[j].Concept) < 0
		})
	case SortAlphaDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(records[i].Concept, records[j].Concept) > 0
		})
	default: // SortNewest
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Timestamp.After(records[j].Timestamp)
		})
	}
}
