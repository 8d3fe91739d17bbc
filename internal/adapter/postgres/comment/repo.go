// Package comment implements the topic Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres"
	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const commentColumns = "id, topic_guid, author, body, created_at"

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByTopic returns a topic's comments ordered by creation time.
// Returns an empty slice (not nil) when the topic has none.
func (r *Repo) ListByTopic(ctx context.Context, topicGUID uuid.UUID) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(commentColumns).
		From("comments").
		Where(squirrel.Eq{"topic_guid": topicGUID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comment list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "comment list")
	}
	defer rows.Close()

	result := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, postgres.MapError(err, "comment list")
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "comment list")
	}

	return result, nil
}

// Create inserts a new comment.
// Returns domain.ErrNotFound when the topic does not exist (FK violation).
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("comments").
		Columns("id", "topic_guid", "author", "body", "created_at").
		Values(c.ID, c.TopicGUID, c.Author, c.Body, c.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comment insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "comment create")
	}

	return c, nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.TopicGUID, &c.Author, &c.Body, &c.CreatedAt)
	if err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}
