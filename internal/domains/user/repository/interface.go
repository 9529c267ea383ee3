package repository

import (
	"context"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/user/model"
)

type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *model.User) error

	// GetByID gets a user by id
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByUsername gets a user by its unique username
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
