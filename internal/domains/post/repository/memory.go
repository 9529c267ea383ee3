package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/post/model"
)

// MemoryPostRepository is a slice-backed PostRepository used by tests
// and local development without a database. Ids are assigned from a
// monotonic counter, matching the creation-order guarantee of the
// postgres implementation.
type MemoryPostRepository struct {
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (r *MemoryPostRepository) Create(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = r.nextID
	r.nextID++

	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *MemoryPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}

	clone := *post
	return &clone, nil
}

func (r *MemoryPostRepository) Update(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.posts[post.ID]
	if !ok {
		return model.ErrPostNotFound
	}

	// Only text and group are mutable
	existing.Text = post.Text
	existing.Group = post.Group
	return nil
}

func (r *MemoryPostRepository) List(
	ctx context.Context,
	filter Filter,
	limit, offset int,
) ([]*model.Post, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*model.Post
	for _, post := range r.posts {
		if !matches(post, filter) {
			continue
		}
		clone := *post
		matched = append(matched, &clone)
	}

	// Newest first: pub_date desc, ties broken by id desc
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].PubDate.Equal(matched[j].PubDate) {
			return matched[i].PubDate.After(matched[j].PubDate)
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)

	if offset >= total {
		return nil, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return matched[offset:end], total, nil
}

func (r *MemoryPostRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, post := range r.posts {
		if post.Author.ID == authorID {
			count++
		}
	}

	return count, nil
}

// Reset clears all posts. Test fixture convenience only; post
// deletion is not part of the public surface.
func (r *MemoryPostRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = make(map[int64]*model.Post)
	r.nextID = 1
}

func matches(post *model.Post, filter Filter) bool {
	if filter.GroupID != nil {
		// Ungrouped posts never match a group filter
		if post.Group == nil || post.Group.ID != *filter.GroupID {
			return false
		}
	}
	if filter.AuthorID != nil && post.Author.ID != *filter.AuthorID {
		return false
	}
	return true
}
