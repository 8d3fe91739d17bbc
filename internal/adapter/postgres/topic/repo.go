// Package topic implements the Topic repository using PostgreSQL.
// Topics own their viewpoints by reference through the topic_viewpoints
// join table; deleting a topic never touches viewpoint or snapshot rows.
package topic

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

const topicColumns = `guid, project_id, title, topic_type, topic_status, label, description,
creation_author, creation_date, due_date, assigned_to, current_viewpoint`

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL for join queries
// ---------------------------------------------------------------------------

const viewpointGUIDsSQL = `
SELECT topic_guid, viewpoint_guid
FROM topic_viewpoints
WHERE topic_guid = ANY($1::uuid[])
ORDER BY topic_guid, position`

const attachViewpointSQL = `
INSERT INTO topic_viewpoints (topic_guid, viewpoint_guid, position)
VALUES ($1, $2,
    (SELECT COALESCE(MAX(position) + 1, 0) FROM topic_viewpoints WHERE topic_guid = $1))
ON CONFLICT (topic_guid, viewpoint_guid) DO NOTHING`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByGUID returns a topic with its viewpoint references loaded.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(topicColumns).
		From("topics").
		Where(squirrel.Eq{"guid": guid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic select: %w", err)
	}

	t, err := scanTopic(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "topic get")
	}

	if err := r.loadViewpointGUIDs(ctx, []*domain.Topic{t}); err != nil {
		return nil, err
	}

	return t, nil
}

// List returns all topics of a project in insertion order (creation
// sequence). Returns an empty slice (not nil) when the project has none.
func (r *Repo) List(ctx context.Context, projectID uuid.UUID) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(topicColumns).
		From("topics").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "topic list")
	}
	defer rows.Close()

	topics, err := scanTopics(rows)
	if err != nil {
		return nil, postgres.MapError(err, "topic list")
	}

	if err := r.loadViewpointGUIDs(ctx, topics); err != nil {
		return nil, err
	}

	return topics, nil
}

// ExistByGUIDs reports which of the given GUIDs already exist. Used by the
// BCF importer to skip duplicates without overwriting.
func (r *Repo) ExistByGUIDs(ctx context.Context, guids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(guids) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT guid FROM topics WHERE guid = ANY($1::uuid[])`, guids)
	if err != nil {
		return nil, postgres.MapError(err, "topic exist")
	}
	defer rows.Close()

	exist := make(map[uuid.UUID]bool, len(guids))
	for rows.Next() {
		var guid uuid.UUID
		if err := rows.Scan(&guid); err != nil {
			return nil, postgres.MapError(err, "topic exist")
		}
		exist[guid] = true
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "topic exist")
	}

	return exist, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic. GUID and CreationDate must already be set by
// the caller; they are immutable afterwards.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("topics").
		Columns("guid", "project_id", "title", "topic_type", "topic_status", "label",
			"description", "creation_author", "creation_date", "due_date", "assigned_to",
			"current_viewpoint").
		Values(t.GUID, t.ProjectID, t.Title, t.TopicType, t.TopicStatus, t.Label,
			t.Description, t.CreationAuthor, t.CreationDate, t.DueDate, t.AssignedTo,
			t.CurrentViewpoint).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "topic create")
	}

	return t, nil
}

// Update merges the non-nil params into the stored topic. GUID and
// creation_date are never touched. Returns domain.ErrNotFound when absent.
func (r *Repo) Update(ctx context.Context, guid uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := qb.Update("topics").Where(squirrel.Eq{"guid": guid})
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.TopicType != nil {
		update = update.Set("topic_type", *params.TopicType)
	}
	if params.TopicStatus != nil {
		update = update.Set("topic_status", *params.TopicStatus)
	}
	if params.Label != nil {
		update = update.Set("label", *params.Label)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.DueDate != nil {
		update = update.Set("due_date", *params.DueDate)
	}
	if params.AssignedTo != nil {
		update = update.Set("assigned_to", *params.AssignedTo)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "topic update")
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("topic %s: %w", guid, domain.ErrNotFound)
	}

	return r.GetByGUID(ctx, guid)
}

// SetCurrentViewpoint moves the topic's current-viewpoint pointer.
func (r *Repo) SetCurrentViewpoint(ctx context.Context, guid, viewpointGUID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE topics SET current_viewpoint = $2 WHERE guid = $1`, guid, viewpointGUID)
	if err != nil {
		return postgres.MapError(err, "topic set current viewpoint")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", guid, domain.ErrNotFound)
	}

	return nil
}

// AttachViewpoint links a viewpoint to a topic at the next position.
// Idempotent: attaching the same pair twice is not an error.
// Returns domain.ErrNotFound when the topic does not exist.
func (r *Repo) AttachViewpoint(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, attachViewpointSQL, topicGUID, viewpointGUID); err != nil {
		return postgres.MapError(err, "topic attach viewpoint")
	}

	return nil
}

// Delete removes a topic and its viewpoint links. Viewpoints and snapshot
// binaries are intentionally left behind; cmd/cleanup purges orphans.
// Returns domain.ErrNotFound when the topic does not exist.
func (r *Repo) Delete(ctx context.Context, guid uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM topics WHERE guid = $1`, guid)
	if err != nil {
		return postgres.MapError(err, "topic delete")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", guid, domain.ErrNotFound)
	}

	return nil
}

// ClearAll removes every topic of a project. Viewpoints and snapshots stay
// (same non-cascade contract as Delete).
func (r *Repo) ClearAll(ctx context.Context, projectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM topics WHERE project_id = $1`, projectID); err != nil {
		return postgres.MapError(err, "topic clear")
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) loadViewpointGUIDs(ctx context.Context, topics []*domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	guids := make([]uuid.UUID, len(topics))
	byGUID := make(map[uuid.UUID]*domain.Topic, len(topics))
	for i, t := range topics {
		guids[i] = t.GUID
		byGUID[t.GUID] = t
		t.ViewpointGUIDs = []uuid.UUID{}
	}

	rows, err := q.Query(ctx, viewpointGUIDsSQL, guids)
	if err != nil {
		return postgres.MapError(err, "topic viewpoints")
	}
	defer rows.Close()

	for rows.Next() {
		var topicGUID, vpGUID uuid.UUID
		if err := rows.Scan(&topicGUID, &vpGUID); err != nil {
			return postgres.MapError(err, "topic viewpoints")
		}
		if t, ok := byGUID[topicGUID]; ok {
			t.ViewpointGUIDs = append(t.ViewpointGUIDs, vpGUID)
		}
	}
	if err := rows.Err(); err != nil {
		return postgres.MapError(err, "topic viewpoints")
	}

	return nil
}

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(
		&t.GUID, &t.ProjectID, &t.Title, &t.TopicType, &t.TopicStatus, &t.Label,
		&t.Description, &t.CreationAuthor, &t.CreationDate, &t.DueDate, &t.AssignedTo,
		&t.CurrentViewpoint,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTopics(rows pgx.Rows) ([]*domain.Topic, error) {
	var result []*domain.Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Topic{}
	}

	return result, nil
}
