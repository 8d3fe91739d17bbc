package viewpoint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/bcf"
	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// Capture creates a new viewpoint from the viewer's camera state, attaches
// it to the topic and makes it the topic's current viewpoint.
//
// The camera is converted to BCF space here and never again. A snapshot that
// is not a valid PNG is dropped with a warning; the viewpoint itself is still
// created (soft failure, the capture must not be lost over a bad image).
func (s *Service) Capture(ctx context.Context, input CaptureInput) (*domain.Viewpoint, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Fail early if the topic is gone.
	if _, err := s.topics.GetByGUID(ctx, input.TopicGUID); err != nil {
		return nil, fmt.Errorf("capture viewpoint: %w", err)
	}

	vp := &domain.Viewpoint{
		GUID:   uuid.New(),
		Title:  input.Title,
		Camera: bcf.ToBCFCamera(input.Camera),
	}

	snapshot := s.acceptSnapshot(ctx, input.Snapshot, vp.GUID)
	if snapshot != nil {
		ref := uuid.New()
		vp.SnapshotRef = &ref
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if snapshot != nil {
			if err := s.snapshots.Set(txCtx, *vp.SnapshotRef, snapshot); err != nil {
				return fmt.Errorf("store snapshot: %w", err)
			}
		}
		if _, err := s.viewpoints.Create(txCtx, vp); err != nil {
			return fmt.Errorf("create viewpoint: %w", err)
		}
		if err := s.topics.AttachViewpoint(txCtx, input.TopicGUID, vp.GUID); err != nil {
			return fmt.Errorf("attach viewpoint: %w", err)
		}
		if err := s.topics.SetCurrentViewpoint(txCtx, input.TopicGUID, vp.GUID); err != nil {
			return fmt.Errorf("set current viewpoint: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "viewpoint captured",
		slog.String("topic_guid", input.TopicGUID.String()),
		slog.String("viewpoint_guid", vp.GUID.String()),
		slog.Bool("has_snapshot", vp.HasSnapshot()),
	)

	return vp, nil
}

// acceptSnapshot returns the snapshot bytes if they pass the PNG signature
// check, nil otherwise. Rejection is logged, not returned as an error.
func (s *Service) acceptSnapshot(ctx context.Context, data []byte, viewpointGUID uuid.UUID) []byte {
	if len(data) == 0 {
		return nil
	}
	if !bcf.IsPNG(data) {
		s.log.WarnContext(ctx, "snapshot rejected, not a PNG",
			slog.String("viewpoint_guid", viewpointGUID.String()),
			slog.Int("size", len(data)),
		)
		return nil
	}
	return data
}
