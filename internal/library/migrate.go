package library

import (
	"strings"

	"github.com/abhisek/explainthis/internal/explain"
)

// normalizeLevels lower-cases any record level stored with historical
// casing, in place. Returns true when at least one record changed, so
// the caller knows whether a persist is needed. Idempotent: a second
// pass over normalized records changes nothing.
func normalizeLevels(records []explain.Explanation) bool {
	changed := false
	for i, rec := range records {
		lower := explain.Level(strings.ToLower(string(rec.Level)))
		if lower != rec.Level {
			records[i].Level = lower
			changed = true
		}
	}
	return changed
}
