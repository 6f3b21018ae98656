package links

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used by tests and DSN-less
// development runs. ReplaceOrders applies under the same lock as every other
// write, so its all-or-nothing contract holds here too.
type InMemoryRepository struct {
	mu    sync.RWMutex
	links map[string]*Link
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{links: make(map[string]*Link)}
}

func (r *InMemoryRepository) Create(ctx context.Context, link *Link) (*Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *link
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.links[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.links[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *l
	return &result, nil
}

func (r *InMemoryRepository) listLocked(userID string, visibleOnly bool) []*Link {
	result := make([]*Link, 0)
	for _, l := range r.links {
		if l.UserID != userID {
			continue
		}
		if visibleOnly && !l.Visible {
			continue
		}
		copied := *l
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked(userID, false), nil
}

func (r *InMemoryRepository) ListVisibleByUser(ctx context.Context, userID string) ([]*Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked(userID, true), nil
}

func (r *InMemoryRepository) MaxOrder(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	max := -1
	for _, l := range r.links {
		if l.UserID == userID && l.SortOrder > max {
			max = l.SortOrder
		}
	}
	return max, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, link *Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[link.ID]; !ok {
		return common.ErrorNotFound
	}
	stored := *link
	r.links[link.ID] = &stored
	return nil
}

func (r *InMemoryRepository) ReplaceOrders(ctx context.Context, userID string, ids []string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate before touching anything so a stray id leaves orders intact.
	for _, id := range ids {
		l, ok := r.links[id]
		if !ok || l.UserID != userID {
			return common.ErrorForbidden
		}
	}

	for i, id := range ids {
		r.links[id].SortOrder = i
		r.links[id].UpdatedAt = updatedAt
	}
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.links, id)
	return nil
}
