package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	groupRepo "microblog-backend/internal/domains/group/repository"
	"microblog-backend/internal/domains/post/model"
	"microblog-backend/internal/domains/post/repository"
	userRepo "microblog-backend/internal/domains/user/repository"
	"microblog-backend/pkg/cache"
	"microblog-backend/pkg/logger"
)

const (
	// The front page is the hottest listing; its first page is cached
	// briefly, matching the original application's index cache.
	indexCacheKey = "posts:index:page:1"
	indexCacheTTL = 20 * time.Second
)

type queryService struct {
	postRepo  repository.PostRepository
	groupRepo groupRepo.GroupRepository
	userRepo  userRepo.UserRepository
	pageSize  int
	cache     cache.Cache
}

func NewQueryService(
	postRepo repository.PostRepository,
	groups groupRepo.GroupRepository,
	users userRepo.UserRepository,
	pageSize int,
	c cache.Cache,
) QueryService {
	return &queryService{
		postRepo:  postRepo,
		groupRepo: groups,
		userRepo:  users,
		pageSize:  pageSize,
		cache:     c,
	}
}

func (s *queryService) ListPosts(ctx context.Context, scope model.Scope, page int) (*model.ListPostsResponse, error) {
	// Step 1: Reject invalid page numbers. A missing page defaults to 1
	// in the handler; anything below 1 is caller error.
	if page < 1 {
		return nil, model.NewInvalidPageError()
	}

	// Step 2: Serve the front page from cache when possible
	cacheable := scope.Kind == model.ScopeAll && page == 1
	if cacheable && s.cache != nil {
		var cached model.ListPostsResponse
		if found, err := s.cache.Get(ctx, indexCacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	// Step 3: Resolve the scope to a filter. Unknown slugs and
	// usernames are not-found errors, unlike empty listings.
	filter, scopeInfo, err := s.resolveScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	// Step 4: Fetch the page slice plus the total match count
	offset := (page - 1) * s.pageSize
	posts, total, err := s.postRepo.List(ctx, filter, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	// Step 5: Build the page context
	items := make([]model.PostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, model.ToPostResponse(post))
	}

	res := &model.ListPostsResponse{
		Posts:      items,
		Group:      scopeInfo.group,
		Author:     scopeInfo.author,
		Pagination: model.NewPaginationMeta(page, s.pageSize, total),
	}
	if res.Author != nil {
		res.Author.PostCount = total
	}

	if cacheable && s.cache != nil {
		if err := s.cache.Set(ctx, indexCacheKey, res, indexCacheTTL); err != nil {
			logger.Warn("failed to cache index page", err)
		}
	}

	return res, nil
}

func (s *queryService) GetPost(ctx context.Context, id int64) (*model.PostDetailResponse, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	count, err := s.postRepo.CountByAuthor(ctx, post.Author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}

	return &model.PostDetailResponse{
		Post:            model.ToPostResponse(post),
		AuthorPostCount: count,
	}, nil
}

// scopeInfo carries the listing header resolved alongside the filter.
type scopeInfo struct {
	group  *model.GroupInfo
	author *model.AuthorInfo
}

func (s *queryService) resolveScope(ctx context.Context, scope model.Scope) (repository.Filter, scopeInfo, error) {
	switch scope.Kind {
	case model.ScopeGroup:
		group, err := s.groupRepo.GetBySlug(ctx, scope.GroupSlug)
		if err != nil {
			return repository.Filter{}, scopeInfo{}, err
		}
		return repository.Filter{GroupID: &group.ID}, scopeInfo{
			group: &model.GroupInfo{
				Slug:        group.Slug,
				Title:       group.Title,
				Description: group.Description,
			},
		}, nil

	case model.ScopeAuthor:
		user, err := s.userRepo.GetByUsername(ctx, scope.Username)
		if err != nil {
			return repository.Filter{}, scopeInfo{}, err
		}
		return repository.Filter{AuthorID: &user.ID}, scopeInfo{
			author: &model.AuthorInfo{Username: user.Username},
		}, nil

	default:
		return repository.Filter{}, scopeInfo{}, nil
	}
}
