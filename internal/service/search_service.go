package service

import (
	"context"
	"fmt"
	"time"

	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/failover"
	"dept-tracker-be/internal/search"

	"github.com/patrickmn/go-cache"
)

const (
	SearchScopeNotes = "notes"
	SearchScopeTasks = "tasks"
	SearchScopeAll   = "all"

	defaultSearchLimit = 20
	searchCacheTTL     = 30 * time.Second
)

type ISearchService interface {
	Search(ctx context.Context, query, scope string, limit int) (*dto.SearchEnvelope, error)
}

type searchService struct {
	noteGateway failover.NoteGateway
	taskGateway failover.TaskGateway
	scorer      *search.Scorer
	cache       *cache.Cache
	log         logger.ILogger
}

func NewSearchService(noteGateway failover.NoteGateway, taskGateway failover.TaskGateway, scorer *search.Scorer, log logger.ILogger) ISearchService {
	return &searchService{
		noteGateway: noteGateway,
		taskGateway: taskGateway,
		scorer:      scorer,
		cache:       cache.New(searchCacheTTL, 2*searchCacheTTL),
		log:         log,
	}
}

func (s *searchService) Search(ctx context.Context, query, scope string, limit int) (*dto.SearchEnvelope, error) {
	q, err := search.NormalizeQuery(query)
	if err != nil {
		return nil, err
	}

	if scope == "" {
		scope = SearchScopeAll
	}
	if scope != SearchScopeNotes && scope != SearchScopeTasks && scope != SearchScopeAll {
		return nil, apperrors.NewValidation("unknown search scope %q", scope)
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}

	cacheKey := fmt.Sprintf("%s|%s|%d", q, scope, limit)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.SearchEnvelope), nil
	}

	var noteResults, taskResults []search.Result
	if scope == SearchScopeNotes || scope == SearchScopeAll {
		noteResults = s.searchNotes(ctx, q, limit)
	}
	if scope == SearchScopeTasks || scope == SearchScopeAll {
		taskResults = s.searchTasks(ctx, q, limit)
	}

	ranked := noteResults
	switch scope {
	case SearchScopeTasks:
		ranked = taskResults
	case SearchScopeAll:
		ranked = search.Merge(noteResults, taskResults, limit)
	}

	results := dto.SearchResults{
		Notes: make([]dto.SearchResultItem, 0, len(ranked)),
		Tasks: make([]dto.SearchResultItem, 0, len(ranked)),
	}
	for _, r := range ranked {
		switch r.Type {
		case search.TypeNote:
			results.Notes = append(results.Notes, noteResultItem(r))
		case search.TypeTask:
			results.Tasks = append(results.Tasks, taskResultItem(r))
		}
	}
	results.TotalCount = len(results.Notes) + len(results.Tasks)

	envelope := &dto.SearchEnvelope{
		Success:    true,
		Results:    results,
		Query:      q,
		SearchType: scope,
	}

	s.cache.Set(cacheKey, envelope, cache.DefaultExpiration)
	return envelope, nil
}

// searchNotes scores every active note against the query. A failing note
// collection degrades to an empty slice so the other scope still answers.
func (s *searchService) searchNotes(ctx context.Context, query string, limit int) []search.Result {
	notes, err := s.noteGateway.List(ctx, contract.NoteFilter{ActiveOnly: true})
	if err != nil {
		s.log.Warn("search", "note collection unavailable, degrading to empty", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	results := make([]search.Result, 0)
	for _, n := range notes {
		doc := search.ProjectNote(n)
		if !s.scorer.Matches(doc, query) {
			continue
		}
		results = append(results, search.Result{
			Type:  search.TypeNote,
			Score: s.scorer.Score(doc, query),
			Note:  n,
		})
	}
	return search.Rank(results, limit)
}

func (s *searchService) searchTasks(ctx context.Context, query string, limit int) []search.Result {
	tasks, err := s.taskGateway.List(ctx, contract.TaskFilter{})
	if err != nil {
		s.log.Warn("search", "task collection unavailable, degrading to empty", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	results := make([]search.Result, 0)
	for _, t := range tasks {
		doc := search.ProjectTask(t)
		if !s.scorer.Matches(doc, query) {
			continue
		}
		results = append(results, search.Result{
			Type:  search.TypeTask,
			Score: s.scorer.Score(doc, query),
			Task:  t,
		})
	}
	return search.Rank(results, limit)
}

func noteResultItem(r search.Result) dto.SearchResultItem {
	return dto.SearchResultItem{
		Type:      search.TypeNote,
		Score:     r.Score,
		Id:        r.Note.Id,
		Title:     r.Note.Title,
		Content:   r.Note.Content,
		Category:  r.Note.Category,
		CreatedAt: r.Note.CreatedAt,
		UpdatedAt: r.Note.UpdatedAt,
		Source:    string(r.Note.Source),
	}
}

func taskResultItem(r search.Result) dto.SearchResultItem {
	return dto.SearchResultItem{
		Type:        search.TypeTask,
		Score:       r.Score,
		Id:          r.Task.Id,
		Title:       r.Task.Title,
		Description: r.Task.Description,
		Status:      r.Task.Status,
		Priority:    r.Task.Priority,
		CreatedAt:   r.Task.CreatedAt,
		UpdatedAt:   r.Task.UpdatedAt,
		Source:      string(r.Task.Source),
	}
}
