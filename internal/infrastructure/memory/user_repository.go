package memory

import (
	"context"
	"sync"

	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/internal/domain/repository"
)

// UserRepository is the default in-process credential store. A single mutex
// is held for the full duration of every call, so reads never race writes.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]entity.User)}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	r.users[u.Username] = *u
	return nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	// copy out so callers never hold a reference into the map
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
