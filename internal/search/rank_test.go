package search

import (
	"testing"

	"dept-tracker-be/internal/entity"
)

func noteResult(id int64, score int) Result {
	return Result{Type: TypeNote, Score: score, Note: &entity.Note{Id: id}}
}

func taskResult(id int64, score int) Result {
	return Result{Type: TypeTask, Score: score, Task: &entity.Task{Id: id}}
}

func ids(results []Result) []int64 {
	out := make([]int64, 0, len(results))
	for _, r := range results {
		if r.Note != nil {
			out = append(out, r.Note.Id)
		} else {
			out = append(out, r.Task.Id)
		}
	}
	return out
}

func TestRank(t *testing.T) {
	tests := []struct {
		name    string
		input   []Result
		limit   int
		wantIds []int64
	}{
		{
			name:    "descending by score",
			input:   []Result{noteResult(1, 50), noteResult(2, 150), noteResult(3, 100)},
			limit:   10,
			wantIds: []int64{2, 3, 1},
		},
		{
			name: "ties keep input order",
			// Input arrives newest-first, so equal scores stay newest-first.
			input:   []Result{noteResult(9, 100), noteResult(5, 100), noteResult(1, 100)},
			limit:   10,
			wantIds: []int64{9, 5, 1},
		},
		{
			name:    "truncates to limit",
			input:   []Result{noteResult(1, 10), noteResult(2, 30), noteResult(3, 20)},
			limit:   2,
			wantIds: []int64{2, 3},
		},
		{
			name:    "zero limit keeps everything",
			input:   []Result{noteResult(1, 10), noteResult(2, 30)},
			limit:   0,
			wantIds: []int64{2, 1},
		},
		{
			name:    "empty input",
			input:   nil,
			limit:   5,
			wantIds: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Rank(tt.input, tt.limit))
			if len(got) != len(tt.wantIds) {
				t.Fatalf("Rank returned ids %v, want %v", got, tt.wantIds)
			}
			for i := range got {
				if got[i] != tt.wantIds[i] {
					t.Fatalf("Rank returned ids %v, want %v", got, tt.wantIds)
				}
			}
		})
	}
}

func TestMerge(t *testing.T) {
	notes := []Result{noteResult(1, 150), noteResult(2, 50)}
	tasks := []Result{taskResult(10, 100), taskResult(11, 25)}

	merged := Merge(notes, tasks, 3)

	if len(merged) != 3 {
		t.Fatalf("Merge returned %d results, want 3", len(merged))
	}
	if merged[0].Note == nil || merged[0].Note.Id != 1 {
		t.Errorf("merged[0] = %+v, want note 1", merged[0])
	}
	if merged[1].Task == nil || merged[1].Task.Id != 10 {
		t.Errorf("merged[1] = %+v, want task 10", merged[1])
	}
	if merged[2].Note == nil || merged[2].Note.Id != 2 {
		t.Errorf("merged[2] = %+v, want note 2", merged[2])
	}
}
