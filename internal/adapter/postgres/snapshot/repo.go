// Package snapshot implements the snapshot binary store using PostgreSQL.
// Rows hold raw PNG bytes keyed by the owning viewpoint's snapshot
// reference; the PNG signature gate lives in the viewpoint service, not here.
package snapshot

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres"
)

// Repo provides snapshot binary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new snapshot repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the snapshot bytes for a reference.
// Returns domain.ErrNotFound if no binary is stored under it.
func (r *Repo) Get(ctx context.Context, ref uuid.UUID) ([]byte, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var data []byte
	err := q.QueryRow(ctx, `SELECT data FROM snapshots WHERE ref = $1`, ref).Scan(&data)
	if err != nil {
		return nil, postgres.MapError(err, "snapshot get")
	}

	return data, nil
}

// Set stores (or replaces) the snapshot bytes under a reference.
func (r *Repo) Set(ctx context.Context, ref uuid.UUID, data []byte) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, `
INSERT INTO snapshots (ref, data, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (ref) DO UPDATE SET data = EXCLUDED.data, created_at = EXCLUDED.created_at`,
		ref, data, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "snapshot set")
	}

	return nil
}

// Delete removes a snapshot binary. Missing refs are not an error.
func (r *Repo) Delete(ctx context.Context, ref uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM snapshots WHERE ref = $1`, ref); err != nil {
		return postgres.MapError(err, "snapshot delete")
	}

	return nil
}

// DeleteOrphans removes snapshots no viewpoint references and returns the
// number removed. Used by cmd/cleanup.
func (r *Repo) DeleteOrphans(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `
DELETE FROM snapshots s
WHERE NOT EXISTS (
    SELECT 1 FROM viewpoints v WHERE v.snapshot_ref = s.ref
)`)
	if err != nil {
		return 0, postgres.MapError(err, "snapshot delete orphans")
	}

	return tag.RowsAffected(), nil
}
