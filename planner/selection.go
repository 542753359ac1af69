package planner

import (
	"slices"

	"suratguide/models"
)

// Selection is the ordered, duplicate-free list of chosen activity ids.
// Insertion order is the itinerary order.
type Selection []string

// Toggle returns a new selection with id removed if present, or appended otherwise.
// sel is never modified.
func Toggle(sel Selection, id string) Selection {
	if i := slices.Index(sel, id); i >= 0 {
		out := make(Selection, 0, len(sel)-1)
		out = append(out, sel[:i]...)
		return append(out, sel[i+1:]...)
	}
	out := make(Selection, 0, len(sel)+1)
	out = append(out, sel...)
	return append(out, id)
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	return slices.Contains(s, id)
}

// Prune keeps only ids present in records, dropping duplicates, so the selection is
// a subset of the loaded collection again.
func Prune(sel Selection, records []models.ActivityRecord) Selection {
	known := make(map[string]struct{}, len(records))
	for _, rec := range records {
		known[rec.ID] = struct{}{}
	}

	out := make(Selection, 0, len(sel))
	seen := make(map[string]struct{}, len(sel))
	for _, id := range sel {
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
