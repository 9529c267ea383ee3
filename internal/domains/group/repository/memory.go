package repository

import (
	"context"
	"sort"
	"sync"

	"microblog-backend/internal/domains/group/model"
)

// memoryGroupRepository is a map-backed GroupRepository used by tests
// and local development without a database.
type memoryGroupRepository struct {
	mu     sync.RWMutex
	groups map[string]*model.Group // keyed by slug
}

func NewMemoryGroupRepository() GroupRepository {
	return &memoryGroupRepository{
		groups: make(map[string]*model.Group),
	}
}

func (r *memoryGroupRepository) Create(ctx context.Context, group *model.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[group.Slug]; exists {
		return model.ErrSlugTaken
	}

	clone := *group
	r.groups[group.Slug] = &clone
	return nil
}

func (r *memoryGroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	group, ok := r.groups[slug]
	if !ok {
		return nil, model.ErrGroupNotFound
	}

	clone := *group
	return &clone, nil
}

func (r *memoryGroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([]*model.Group, 0, len(r.groups))
	for _, group := range r.groups {
		clone := *group
		groups = append(groups, &clone)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Title < groups[j].Title
	})

	return groups, nil
}
