package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	groupModel "microblog-backend/internal/domains/group/model"
	groupRepo "microblog-backend/internal/domains/group/repository"
	"microblog-backend/internal/domains/post/model"
	"microblog-backend/internal/domains/post/repository"
	userModel "microblog-backend/internal/domains/user/model"
	userRepo "microblog-backend/internal/domains/user/repository"
	"microblog-backend/pkg/cache"
	"microblog-backend/pkg/logger"
)

type mutationService struct {
	postRepo  repository.PostRepository
	groupRepo groupRepo.GroupRepository
	userRepo  userRepo.UserRepository
	cache     cache.Cache
	now       func() time.Time
}

func NewMutationService(
	postRepo repository.PostRepository,
	groups groupRepo.GroupRepository,
	users userRepo.UserRepository,
	c cache.Cache,
) MutationService {
	return &mutationService{
		postRepo:  postRepo,
		groupRepo: groups,
		userRepo:  users,
		cache:     c,
		now:       time.Now,
	}
}

func (s *mutationService) CreatePost(ctx context.Context, authorID uuid.UUID, form model.PostForm) (*model.PostResponse, error) {
	// Step 1: Validate form
	if err := form.Validate(); err != nil {
		return nil, model.NewTextRequiredError()
	}

	// Step 2: Resolve the optional group slug
	group, err := s.resolveGroup(ctx, form.Group)
	if err != nil {
		return nil, err
	}

	// Step 3: Look up the author (becomes the immutable post author)
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			return nil, fmt.Errorf("author does not exist: %w", err)
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	// Step 4: Append the post; pub_date is set once, here
	post := &model.Post{
		Text:    form.Text,
		Author:  model.AuthorRef{ID: author.ID, Username: author.Username},
		Group:   group,
		PubDate: s.now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.invalidateIndex(ctx)

	res := model.ToPostResponse(post)
	return &res, nil
}

func (s *mutationService) EditPost(ctx context.Context, requesterID uuid.UUID, postID int64, form model.PostForm) (*model.PostResponse, error) {
	// Step 1: Get the post
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	// Step 2: Re-check authorship. The access guard already bounced
	// non-authors; the service verifies again rather than trusting its
	// callers.
	if post.Author.ID != requesterID {
		return nil, model.NewNotAuthorError()
	}

	// Step 3: Validate form
	if err := form.Validate(); err != nil {
		return nil, model.NewTextRequiredError()
	}

	// Step 4: Resolve the group. The form fully replaces the prior
	// values: an omitted group clears it.
	group, err := s.resolveGroup(ctx, form.Group)
	if err != nil {
		return nil, err
	}

	// Step 5: Apply. Author, pub_date and id stay untouched.
	post.Text = form.Text
	post.Group = group

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.invalidateIndex(ctx)

	res := model.ToPostResponse(post)
	return &res, nil
}

// resolveGroup maps a slug to a group reference; empty means ungrouped.
func (s *mutationService) resolveGroup(ctx context.Context, slug string) (*model.GroupRef, error) {
	if slug == "" {
		return nil, nil
	}

	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, groupModel.ErrGroupNotFound) {
			// An unknown slug on the form is a validation failure, not
			// a not-found page
			return nil, model.NewUnknownGroupError(slug)
		}
		return nil, fmt.Errorf("failed to resolve group: %w", err)
	}

	return &model.GroupRef{ID: group.ID, Slug: group.Slug, Title: group.Title}, nil
}

func (s *mutationService) invalidateIndex(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, indexCacheKey); err != nil {
		logger.Warn("failed to invalidate index cache", err)
	}
}
