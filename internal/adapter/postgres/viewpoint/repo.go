// Package viewpoint implements the Viewpoint repository using PostgreSQL.
// Stored camera vectors are always in BCF Z-up space.
package viewpoint

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

const viewpointColumns = `guid, title, view_point_x, view_point_y, view_point_z,
direction_x, direction_y, direction_z, up_vector_x, up_vector_y, up_vector_z,
aspect_ratio, field_of_view, snapshot_ref`

// Repo provides viewpoint persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new viewpoint repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByGUID returns a viewpoint by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Viewpoint, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(viewpointColumns).
		From("viewpoints").
		Where(squirrel.Eq{"guid": guid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build viewpoint select: %w", err)
	}

	vp, err := scanViewpoint(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "viewpoint get")
	}

	return vp, nil
}

// GetByGUIDs returns the viewpoints for the given GUIDs, keyed by GUID.
// Missing GUIDs are simply absent from the map, not an error.
func (r *Repo) GetByGUIDs(ctx context.Context, guids []uuid.UUID) (map[uuid.UUID]*domain.Viewpoint, error) {
	if len(guids) == 0 {
		return map[uuid.UUID]*domain.Viewpoint{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(viewpointColumns).
		From("viewpoints").
		Where(squirrel.Eq{"guid": guids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build viewpoint batch select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "viewpoint batch get")
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*domain.Viewpoint, len(guids))
	for rows.Next() {
		vp, err := scanViewpoint(rows)
		if err != nil {
			return nil, postgres.MapError(err, "viewpoint batch get")
		}
		result[vp.GUID] = vp
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "viewpoint batch get")
	}

	return result, nil
}

// Create inserts a new viewpoint.
func (r *Repo) Create(ctx context.Context, vp *domain.Viewpoint) (*domain.Viewpoint, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("viewpoints").
		Columns("guid", "title",
			"view_point_x", "view_point_y", "view_point_z",
			"direction_x", "direction_y", "direction_z",
			"up_vector_x", "up_vector_y", "up_vector_z",
			"aspect_ratio", "field_of_view", "snapshot_ref").
		Values(vp.GUID, vp.Title,
			vp.Camera.ViewPoint.X, vp.Camera.ViewPoint.Y, vp.Camera.ViewPoint.Z,
			vp.Camera.Direction.X, vp.Camera.Direction.Y, vp.Camera.Direction.Z,
			vp.Camera.UpVector.X, vp.Camera.UpVector.Y, vp.Camera.UpVector.Z,
			vp.Camera.AspectRatio, vp.Camera.FieldOfView, vp.SnapshotRef).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build viewpoint insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "viewpoint create")
	}

	return vp, nil
}

// UpdateCamera replaces the camera fields of an existing viewpoint in place.
// GUID never changes. Returns domain.ErrNotFound when absent.
func (r *Repo) UpdateCamera(ctx context.Context, guid uuid.UUID, camera domain.Camera) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update("viewpoints").
		Set("view_point_x", camera.ViewPoint.X).
		Set("view_point_y", camera.ViewPoint.Y).
		Set("view_point_z", camera.ViewPoint.Z).
		Set("direction_x", camera.Direction.X).
		Set("direction_y", camera.Direction.Y).
		Set("direction_z", camera.Direction.Z).
		Set("up_vector_x", camera.UpVector.X).
		Set("up_vector_y", camera.UpVector.Y).
		Set("up_vector_z", camera.UpVector.Z).
		Set("aspect_ratio", camera.AspectRatio).
		Set("field_of_view", camera.FieldOfView).
		Where(squirrel.Eq{"guid": guid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build viewpoint update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "viewpoint update camera")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("viewpoint %s: %w", guid, domain.ErrNotFound)
	}

	return nil
}

// SetSnapshotRef points the viewpoint at a stored snapshot binary.
func (r *Repo) SetSnapshotRef(ctx context.Context, guid, ref uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE viewpoints SET snapshot_ref = $2 WHERE guid = $1`, guid, ref)
	if err != nil {
		return postgres.MapError(err, "viewpoint set snapshot")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("viewpoint %s: %w", guid, domain.ErrNotFound)
	}

	return nil
}

// DeleteOrphans removes viewpoints not referenced by any topic and returns
// the number removed. Used by cmd/cleanup.
func (r *Repo) DeleteOrphans(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `
DELETE FROM viewpoints v
WHERE NOT EXISTS (
    SELECT 1 FROM topic_viewpoints tv WHERE tv.viewpoint_guid = v.guid
)`)
	if err != nil {
		return 0, postgres.MapError(err, "viewpoint delete orphans")
	}

	return tag.RowsAffected(), nil
}

func scanViewpoint(row pgx.Row) (*domain.Viewpoint, error) {
	var vp domain.Viewpoint
	err := row.Scan(
		&vp.GUID, &vp.Title,
		&vp.Camera.ViewPoint.X, &vp.Camera.ViewPoint.Y, &vp.Camera.ViewPoint.Z,
		&vp.Camera.Direction.X, &vp.Camera.Direction.Y, &vp.Camera.Direction.Z,
		&vp.Camera.UpVector.X, &vp.Camera.UpVector.Y, &vp.Camera.UpVector.Z,
		&vp.Camera.AspectRatio, &vp.Camera.FieldOfView, &vp.SnapshotRef,
	)
	if err != nil {
		return nil, err
	}
	return &vp, nil
}
