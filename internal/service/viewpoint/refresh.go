package viewpoint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/bcf"
	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// Refresh replaces the camera (and optionally the snapshot) of an existing
// viewpoint in place. The GUID stays stable so topic references and exports
// keep pointing at the same viewpoint.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*domain.Viewpoint, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vp, err := s.viewpoints.GetByGUID(ctx, input.ViewpointGUID)
	if err != nil {
		return nil, fmt.Errorf("refresh viewpoint: %w", err)
	}

	camera := bcf.ToBCFCamera(input.Camera)
	snapshot := s.acceptSnapshot(ctx, input.Snapshot, vp.GUID)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.viewpoints.UpdateCamera(txCtx, vp.GUID, camera); err != nil {
			return fmt.Errorf("update camera: %w", err)
		}

		if snapshot != nil {
			// Reuse the existing reference when there is one so the old
			// binary is replaced rather than orphaned.
			ref := uuid.New()
			if vp.SnapshotRef != nil {
				ref = *vp.SnapshotRef
			}
			if err := s.snapshots.Set(txCtx, ref, snapshot); err != nil {
				return fmt.Errorf("store snapshot: %w", err)
			}
			if vp.SnapshotRef == nil {
				if err := s.viewpoints.SetSnapshotRef(txCtx, vp.GUID, ref); err != nil {
					return fmt.Errorf("set snapshot ref: %w", err)
				}
				vp.SnapshotRef = &ref
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	vp.Camera = camera

	s.log.InfoContext(ctx, "viewpoint refreshed",
		slog.String("viewpoint_guid", vp.GUID.String()),
		slog.Bool("snapshot_replaced", snapshot != nil),
	)

	return vp, nil
}
