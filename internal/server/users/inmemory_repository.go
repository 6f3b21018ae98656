package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used by tests and DSN-less
// development runs. All methods return copies so callers cannot mutate the
// stored records.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.CreatedAt = time.Now()
	r.users[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *u
	return &result, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			result := *u
			return &result, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) UpdateBio(ctx context.Context, id string, bio string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Bio = bio
	return nil
}
