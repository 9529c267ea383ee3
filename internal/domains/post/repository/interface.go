package repository

import (
	"context"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/post/model"
)

// Filter narrows a listing to one group or one author. The zero value
// selects every post.
type Filter struct {
	GroupID  *uuid.UUID
	AuthorID *uuid.UUID
}

// PostRepository exposes exactly the filter+sort+paginate operation the
// listing pages need; no generic query builder. All listings are
// ordered newest-first (pub_date desc, id desc).
type PostRepository interface {
	// Create inserts a post and assigns its id.
	// Ids increase monotonically in creation order.
	Create(ctx context.Context, post *model.Post) error

	// GetByID gets a post by id
	GetByID(ctx context.Context, id int64) (*model.Post, error)

	// Update replaces a post's text and group. Author, pub_date and id
	// are never touched.
	Update(ctx context.Context, post *model.Post) error

	// List returns one page of posts matching the filter, newest first,
	// plus the total match count.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*model.Post, int, error)

	// CountByAuthor counts an author's posts (profile/detail headers)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}
