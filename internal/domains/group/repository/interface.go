package repository

import (
	"context"

	"microblog-backend/internal/domains/group/model"
)

type GroupRepository interface {
	// Create inserts a new group (seed/fixture path)
	Create(ctx context.Context, group *model.Group) error

	// GetBySlug gets a group by its unique slug
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)

	// List returns all groups ordered by title
	List(ctx context.Context) ([]*model.Group, error)
}
