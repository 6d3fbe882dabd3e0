package memory

import (
	"sync"
	"time"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/repository/contract"
)

// TaskStore is the process-local fallback collection for tasks. Same
// lifetime and id rules as NoteStore.
type TaskStore struct {
	mu    sync.Mutex
	tasks []*entity.Task // newest first
}

func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

func (s *TaskStore) nextIdLocked() int64 {
	var max int64
	for _, t := range s.tasks {
		if t.Id > max {
			max = t.Id
		}
	}
	return max + 1
}

func (s *TaskStore) Insert(task *entity.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.Id = s.nextIdLocked()
	task.Source = entity.SourceFallback
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	cp := *task
	s.tasks = append([]*entity.Task{&cp}, s.tasks...)
}

func (s *TaskStore) Update(task *entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.Id == task.Id {
			task.Source = entity.SourceFallback
			cp := *task
			cp.CreatedAt = existing.CreatedAt
			s.tasks[i] = &cp
			return nil
		}
	}
	return apperrors.NewNotFound("task", task.Id)
}

func (s *TaskStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.Id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("task", id)
}

func (s *TaskStore) GetById(id int64) (*entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tasks {
		if existing.Id == id {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("task", id)
}

func (s *TaskStore) List(filter contract.TaskFilter) []*entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*entity.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.AssignedTo != 0 && t.AssignedTo != filter.AssignedTo {
			continue
		}
		cp := *t
		result = append(result, &cp)
	}
	return result
}

func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
