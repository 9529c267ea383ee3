package service

import (
	"context"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/post/model"
)

// QueryService is the read side: which posts appear on which page, in
// what order, under which scope. Read-only, no side effects.
type QueryService interface {
	// ListPosts returns one page of the scoped listing, newest first.
	// Page numbers start at 1; pages past the end are empty, not errors.
	ListPosts(ctx context.Context, scope model.Scope, page int) (*model.ListPostsResponse, error)

	// GetPost returns the detail view of a single post
	GetPost(ctx context.Context, id int64) (*model.PostDetailResponse, error)
}

// MutationService is the write side: validated create/edit with
// authorship enforced.
type MutationService interface {
	// CreatePost appends a new post authored by authorID
	CreatePost(ctx context.Context, authorID uuid.UUID, form model.PostForm) (*model.PostResponse, error)

	// EditPost replaces a post's text and group. Only the author may
	// edit; authorship is re-checked here even though the access guard
	// rejects non-authors upstream.
	EditPost(ctx context.Context, requesterID uuid.UUID, postID int64, form model.PostForm) (*model.PostResponse, error)
}
