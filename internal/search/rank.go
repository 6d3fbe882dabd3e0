package search

import (
	"sort"

	"dept-tracker-be/internal/entity"
)

const (
	TypeNote = "note"
	TypeTask = "task"
)

// Result is a scored projection of one matched entity. It exists only for
// the lifetime of a search request.
type Result struct {
	Type  string
	Score int
	Note  *entity.Note
	Task  *entity.Task
}

// Rank sorts results by descending score and truncates to limit. The sort is
// stable: ties keep their pre-sort order, which is newest-first because the
// source collections arrive newest-first.
func Rank(results []Result, limit int) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Merge concatenates two per-source ranked lists and re-ranks them globally.
func Merge(notes, tasks []Result, limit int) []Result {
	merged := make([]Result, 0, len(notes)+len(tasks))
	merged = append(merged, notes...)
	merged = append(merged, tasks...)
	return Rank(merged, limit)
}
