package memory

import (
	"sync"
	"time"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
)

// UserStore is the process-local fallback for staff accounts, so logins and
// task assignee checks keep working through a primary outage. It is seeded
// at startup (and by tests) since users rarely change mid-outage.
type UserStore struct {
	mu    sync.Mutex
	users []*entity.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) nextIdLocked() int64 {
	var max int64
	for _, u := range s.users {
		if u.Id > max {
			max = u.Id
		}
	}
	return max + 1
}

func (s *UserStore) Insert(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.Id == 0 {
		user.Id = s.nextIdLocked()
	}
	user.Source = entity.SourceFallback
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	cp := *user
	s.users = append([]*entity.User{&cp}, s.users...)
}

func (s *UserStore) GetById(id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Id == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("user", id)
}

func (s *UserStore) GetByUsername(username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("user", 0)
}

func (s *UserStore) List() []*entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		result = append(result, &cp)
	}
	return result
}
