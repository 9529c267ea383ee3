package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"microblog-backend/internal/domains/group/model"
)

type postgresGroupRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresGroupRepository(pool *pgxpool.Pool) GroupRepository {
	return &postgresGroupRepository{pool: pool}
}

func (r *postgresGroupRepository) Create(ctx context.Context, group *model.Group) error {
	query := `
		INSERT INTO groups (id, slug, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		group.ID,
		group.Slug,
		group.Title,
		group.Description,
		group.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

func (r *postgresGroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	query := `
		SELECT id, slug, title, description, created_at
		FROM groups
		WHERE slug = $1
	`

	group := &model.Group{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&group.ID,
		&group.Slug,
		&group.Title,
		&group.Description,
		&group.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

func (r *postgresGroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	query := `
		SELECT id, slug, title, description, created_at
		FROM groups
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*model.Group
	for rows.Next() {
		group := &model.Group{}
		err := rows.Scan(
			&group.ID,
			&group.Slug,
			&group.Title,
			&group.Description,
			&group.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, nil
}
