package service

import (
	"context"
	"testing"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/failover"
	"dept-tracker-be/internal/repository/memory"
	"dept-tracker-be/internal/search"
)

type searchFixture struct {
	svc         ISearchService
	noteGateway failover.NoteGateway
	taskGateway failover.TaskGateway
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()

	noteGateway := failover.NewNoteGateway(nil, memory.NewNoteStore(), nil)
	taskGateway := failover.NewTaskGateway(nil, memory.NewTaskStore(), nil)
	return &searchFixture{
		svc:         NewSearchService(noteGateway, taskGateway, search.NewScorer(), logger.NewNopLogger()),
		noteGateway: noteGateway,
		taskGateway: taskGateway,
	}
}

func (f *searchFixture) seedNote(t *testing.T, title, content, category string) {
	t.Helper()
	err := f.noteGateway.Create(context.Background(), &entity.Note{
		Title:    title,
		Content:  content,
		Category: category,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed note failed: %v", err)
	}
}

func (f *searchFixture) seedTask(t *testing.T, title, description string) {
	t.Helper()
	err := f.taskGateway.Create(context.Background(), &entity.Task{
		Title:       title,
		Description: description,
		Status:      entity.TaskStatusTodo,
		Priority:    entity.TaskPriorityMedium,
		AssignedTo:  1,
		CreatedBy:   1,
	})
	if err != nil {
		t.Fatalf("seed task failed: %v", err)
	}
}

func TestSearchServiceTitlePrefixMatch(t *testing.T) {
	f := newSearchFixture(t)
	f.seedNote(t, "Rapor teslim tarihleri", "aylik kalite raporu takvimi", "kalite")
	f.seedNote(t, "Eczane stok sayimi", "sayim tutanagi", "eczane")

	res, err := f.svc.Search(context.Background(), "Rapor", "", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if res.Query != "rapor" {
		t.Errorf("Query = %q, want normalized %q", res.Query, "rapor")
	}
	if res.SearchType != SearchScopeAll {
		t.Errorf("SearchType = %q, want %q", res.SearchType, SearchScopeAll)
	}
	if res.Results.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", res.Results.TotalCount)
	}

	note := res.Results.Notes[0]
	// Title contains + title prefix is at least 150; the freshly created
	// note also earns the recency bonus.
	if note.Score < 150 {
		t.Errorf("Score = %d, want >= 150 for a title prefix match", note.Score)
	}
	if note.Title != "Rapor teslim tarihleri" {
		t.Errorf("Title = %q, want the seeded note", note.Title)
	}
}

func TestSearchServiceShortQueryRejected(t *testing.T) {
	f := newSearchFixture(t)

	_, err := f.svc.Search(context.Background(), "a", "", 0)
	if !apperrors.IsValidation(err) {
		t.Errorf("Search error = %v, want ValidationError", err)
	}
}

func TestSearchServiceUnknownScopeRejected(t *testing.T) {
	f := newSearchFixture(t)

	_, err := f.svc.Search(context.Background(), "rapor", "hardware", 0)
	if !apperrors.IsValidation(err) {
		t.Errorf("Search error = %v, want ValidationError", err)
	}
}

func TestSearchServiceScopeFiltering(t *testing.T) {
	f := newSearchFixture(t)
	f.seedNote(t, "Servis bakim notu", "asansor bakimi", "servis")
	f.seedTask(t, "Servis kaydi acilacak", "yazici ariza bildirimi")

	notesOnly, err := f.svc.Search(context.Background(), "servis", SearchScopeNotes, 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(notesOnly.Results.Notes) != 1 || len(notesOnly.Results.Tasks) != 0 {
		t.Errorf("notes scope returned %d notes / %d tasks, want 1 / 0",
			len(notesOnly.Results.Notes), len(notesOnly.Results.Tasks))
	}

	tasksOnly, err := f.svc.Search(context.Background(), "servis", SearchScopeTasks, 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(tasksOnly.Results.Notes) != 0 || len(tasksOnly.Results.Tasks) != 1 {
		t.Errorf("tasks scope returned %d notes / %d tasks, want 0 / 1",
			len(tasksOnly.Results.Notes), len(tasksOnly.Results.Tasks))
	}

	all, err := f.svc.Search(context.Background(), "servis", SearchScopeAll, 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if all.Results.TotalCount != 2 {
		t.Errorf("all scope TotalCount = %d, want 2", all.Results.TotalCount)
	}
}

func TestSearchServiceLimitTruncates(t *testing.T) {
	f := newSearchFixture(t)
	for _, title := range []string{"rapor bir", "rapor iki", "rapor uc"} {
		f.seedNote(t, title, "", "idare")
	}

	res, err := f.svc.Search(context.Background(), "rapor", SearchScopeNotes, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Results.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", res.Results.TotalCount)
	}
}

func TestSearchServiceInactiveNotesExcluded(t *testing.T) {
	f := newSearchFixture(t)
	err := f.noteGateway.Create(context.Background(), &entity.Note{
		Title:    "rapor arsivi",
		Category: "idare",
		IsActive: false,
	})
	if err != nil {
		t.Fatalf("seed note failed: %v", err)
	}

	res, err := f.svc.Search(context.Background(), "rapor", SearchScopeNotes, 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Results.TotalCount != 0 {
		t.Errorf("TotalCount = %d, inactive notes must not surface", res.Results.TotalCount)
	}
}

func TestSearchServiceCachesResponses(t *testing.T) {
	f := newSearchFixture(t)
	f.seedNote(t, "rapor bir", "", "idare")

	first, err := f.svc.Search(context.Background(), "rapor", SearchScopeNotes, 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// A note added after the first search is invisible until the cached
	// response expires.
	f.seedNote(t, "rapor iki", "", "idare")

	second, err := f.svc.Search(context.Background(), "rapor", SearchScopeNotes, 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if second.Results.TotalCount != first.Results.TotalCount {
		t.Errorf("TotalCount = %d, want cached %d", second.Results.TotalCount, first.Results.TotalCount)
	}
}
