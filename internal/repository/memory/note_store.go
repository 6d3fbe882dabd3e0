package memory

import (
	"strings"
	"sync"
	"time"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/repository/contract"
)

// NoteStore is the process-local fallback collection for notes. It lives for
// the process lifetime only; a restart empties it, which is an accepted
// inconsistency of the dual-store design. All access is serialized with a
// mutex so concurrent inserts cannot race on id assignment.
type NoteStore struct {
	mu    sync.Mutex
	notes []*entity.Note // newest first
}

func NewNoteStore() *NoteStore {
	return &NoteStore{}
}

func (s *NoteStore) nextIdLocked() int64 {
	var max int64
	for _, n := range s.notes {
		if n.Id > max {
			max = n.Id
		}
	}
	return max + 1
}

// Insert assigns max(id)+1 and prepends so listings stay newest-first. Ids
// are process-local: they can collide with primary-assigned ids after a
// restart, which the system does not protect against.
func (s *NoteStore) Insert(note *entity.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note.Id = s.nextIdLocked()
	note.Source = entity.SourceFallback
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	cp := *note
	s.notes = append([]*entity.Note{&cp}, s.notes...)
}

func (s *NoteStore) Update(note *entity.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.notes {
		if existing.Id == note.Id {
			note.Source = entity.SourceFallback
			cp := *note
			cp.CreatedAt = existing.CreatedAt
			s.notes[i] = &cp
			return nil
		}
	}
	return apperrors.NewNotFound("note", note.Id)
}

// Delete splices the note out of the in-memory list.
func (s *NoteStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.notes {
		if existing.Id == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("note", id)
}

func (s *NoteStore) GetById(id int64) (*entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.notes {
		if existing.Id == id {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("note", id)
}

func (s *NoteStore) List(filter contract.NoteFilter) []*entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.ToLower(filter.Query)
	result := make([]*entity.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if filter.Category != "" && n.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && !n.IsActive {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(n.Title), query) &&
			!strings.Contains(strings.ToLower(n.Content), query) {
			continue
		}
		cp := *n
		result = append(result, &cp)
	}
	return result
}

func (s *NoteStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}
