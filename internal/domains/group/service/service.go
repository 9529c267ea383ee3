package service

import (
	"context"
	"fmt"
	"time"

	"microblog-backend/internal/domains/group/model"
	"microblog-backend/internal/domains/group/repository"
	"microblog-backend/pkg/cache"
	"microblog-backend/pkg/logger"
)

const (
	groupListCacheKey = "groups:all"
	groupListCacheTTL = 60 * time.Second
)

type ServiceInterface interface {
	// ListGroups returns all groups (used for the post form choices)
	ListGroups(ctx context.Context) ([]*model.Group, error)

	// GetBySlug resolves a group by slug
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type groupService struct {
	groupRepo repository.GroupRepository
	cache     cache.Cache
}

func NewGroupService(groupRepo repository.GroupRepository, c cache.Cache) ServiceInterface {
	return &groupService{
		groupRepo: groupRepo,
		cache:     c,
	}
}

func (s *groupService) ListGroups(ctx context.Context) ([]*model.Group, error) {
	if s.cache != nil {
		var cached []*model.Group
		if found, err := s.cache.Get(ctx, groupListCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, groupListCacheKey, groups, groupListCacheTTL); err != nil {
			// Cache failure is non-critical
			logger.Warn("failed to cache group list", err)
		}
	}

	return groups, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}
