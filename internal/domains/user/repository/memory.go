package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/user/model"
)

// memoryUserRepository is a map-backed UserRepository used by tests
// and local development without a database.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*model.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[uuid.UUID]*model.User),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return model.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return model.ErrEmailTaken
		}
	}

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	clone := *user
	return &clone, nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}

	return nil, model.ErrUserNotFound
}
