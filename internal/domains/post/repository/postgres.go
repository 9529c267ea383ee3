package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"microblog-backend/internal/domains/post/model"
)

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

// selectPost joins the author and the optional group so listings can
// be rendered from a single query.
const selectPost = `
	SELECT
		p.id, p.text, p.pub_date,
		u.id, u.username,
		g.id, g.slug, g.title
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

func (r *postgresPostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (text, author_id, group_id, pub_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var groupID *uuid.UUID
	if post.Group != nil {
		groupID = &post.Group.ID
	}

	err := r.pool.QueryRow(ctx, query,
		post.Text,
		post.Author.ID,
		groupID,
		post.PubDate,
	).Scan(&post.ID)

	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postgresPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	query := selectPost + ` WHERE p.id = $1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepository) Update(ctx context.Context, post *model.Post) error {
	query := `
		UPDATE posts
		SET text = $2, group_id = $3
		WHERE id = $1
	`

	var groupID *uuid.UUID
	if post.Group != nil {
		groupID = &post.Group.ID
	}

	result, err := r.pool.Exec(ctx, query, post.ID, post.Text, groupID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

func (r *postgresPostRepository) List(
	ctx context.Context,
	filter Filter,
	limit, offset int,
) ([]*model.Post, int, error) {
	where := ""
	args := []interface{}{}
	argCount := 1

	if filter.GroupID != nil {
		where = fmt.Sprintf(" WHERE p.group_id = $%d", argCount)
		args = append(args, *filter.GroupID)
		argCount++
	} else if filter.AuthorID != nil {
		where = fmt.Sprintf(" WHERE p.author_id = $%d", argCount)
		args = append(args, *filter.AuthorID)
		argCount++
	}

	query := selectPost + where +
		" ORDER BY p.pub_date DESC, p.id DESC" +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	// Count with the same filter
	countQuery := `SELECT COUNT(*) FROM posts p` + where
	countArgs := args[:argCount-1]

	var total int
	err = r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresPostRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	var groupID *uuid.UUID
	var groupSlug, groupTitle *string

	err := row.Scan(
		&post.ID,
		&post.Text,
		&post.PubDate,
		&post.Author.ID,
		&post.Author.Username,
		&groupID,
		&groupSlug,
		&groupTitle,
	)
	if err != nil {
		return nil, err
	}

	if groupID != nil {
		post.Group = &model.GroupRef{
			ID:    *groupID,
			Slug:  *groupSlug,
			Title: *groupTitle,
		}
	}

	return post, nil
}
