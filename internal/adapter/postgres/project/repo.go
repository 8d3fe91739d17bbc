// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres"
	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const projectColumns = "id, owner_id, name, description, created_at, updated_at"

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a project by primary key with owner filter.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(projectColumns).
		From("projects").
		Where(squirrel.Eq{"id": projectID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project select: %w", err)
	}

	p, err := scanProject(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project get")
	}

	return p, nil
}

// List returns all projects of an owner, newest first.
// Returns an empty slice (not nil) when the owner has none.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(projectColumns).
		From("projects").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project list")
	}
	defer rows.Close()

	result := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, postgres.MapError(err, "project list")
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project list")
	}

	return result, nil
}

// Create inserts a new project.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	sql, args, err := qb.Insert("projects").
		Columns("id", "owner_id", "name", "description", "created_at", "updated_at").
		Values(p.ID, p.OwnerID, p.Name, p.Description, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "project create")
	}

	return p, nil
}

// Delete removes a project; topics cascade at the schema level.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND owner_id = $2`, projectID, ownerID)
	if err != nil {
		return postgres.MapError(err, "project delete")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
