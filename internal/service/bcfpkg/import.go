package bcfpkg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/bcf"
	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// ImportResult summarizes an archive import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Import loads a BCF archive into a project. Topics whose GUID already
// exists are skipped, never overwritten, so re-importing the same archive is
// a no-op. All writes happen in one transaction: a failure halfway leaves
// the project untouched.
func (s *Service) Import(ctx context.Context, projectID uuid.UUID, data []byte) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("archive", "required")
	}
	if int64(len(data)) > s.cfg.MaxImportBytes {
		return nil, domain.NewValidationError("archive",
			fmt.Sprintf("exceeds import limit of %d bytes", s.cfg.MaxImportBytes))
	}

	if _, err := s.projects.GetByID(ctx, userID, projectID); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	pkg, err := bcf.Import(data, projectID)
	if err != nil {
		return nil, err
	}

	guids := make([]uuid.UUID, len(pkg.Topics))
	for i, t := range pkg.Topics {
		guids[i] = t.GUID
	}
	exist, err := s.topics.ExistByGUIDs(ctx, guids)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	result := &ImportResult{}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, t := range pkg.Topics {
			if exist[t.GUID] {
				result.Skipped++
				continue
			}
			if err := s.importTopic(txCtx, t, pkg); err != nil {
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "bcf imported",
		slog.String("project_id", projectID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

func (s *Service) importTopic(ctx context.Context, t *domain.Topic, pkg *bcf.Package) error {
	for _, vpGUID := range t.ViewpointGUIDs {
		vp, ok := pkg.Viewpoints[vpGUID]
		if !ok {
			return fmt.Errorf("import topic %s: viewpoint %s missing from package", t.GUID, vpGUID)
		}

		// Archive snapshots go through the same PNG gate as live captures;
		// a bad image costs the snapshot, not the topic.
		if snap, ok := pkg.Snapshots[vpGUID]; ok {
			if bcf.IsPNG(snap) {
				ref := uuid.New()
				if err := s.snapshots.Set(ctx, ref, snap); err != nil {
					return fmt.Errorf("import topic %s: store snapshot: %w", t.GUID, err)
				}
				vp.SnapshotRef = &ref
			} else {
				s.log.Warn("imported snapshot rejected, not a PNG",
					slog.String("topic_guid", t.GUID.String()),
					slog.String("viewpoint_guid", vpGUID.String()),
				)
			}
		}

		if _, err := s.viewpoints.Create(ctx, vp); err != nil {
			return fmt.Errorf("import topic %s: create viewpoint: %w", t.GUID, err)
		}
	}

	if _, err := s.topics.Create(ctx, t); err != nil {
		return fmt.Errorf("import topic %s: %w", t.GUID, err)
	}
	for _, vpGUID := range t.ViewpointGUIDs {
		if err := s.topics.AttachViewpoint(ctx, t.GUID, vpGUID); err != nil {
			return fmt.Errorf("import topic %s: attach viewpoint: %w", t.GUID, err)
		}
	}

	return nil
}
