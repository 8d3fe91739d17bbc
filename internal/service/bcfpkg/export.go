package bcfpkg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/asanmartin/bimviewer-backend/internal/bcf"
	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// snapshotFetchers caps the parallel snapshot reads during export.
const snapshotFetchers = 8

// ExportResult is a packaged archive plus its suggested download name.
type ExportResult struct {
	Data     []byte
	FileName string
}

// Export packages topics of a project into a BCF 3.0 archive. With an empty
// topicGUIDs selection every topic of the project is exported. Topics without
// any viewpoint fail the export; missing snapshot binaries are tolerated and
// simply omitted from the archive.
func (s *Service) Export(ctx context.Context, projectID uuid.UUID, topicGUIDs []uuid.UUID) (*ExportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	topics, err := s.topics.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if len(topicGUIDs) > 0 {
		topics, err = selectTopics(topics, topicGUIDs)
		if err != nil {
			return nil, err
		}
	}
	if len(topics) == 0 {
		return nil, domain.NewValidationError("project_id", "project has no topics to export")
	}
	if len(topics) > s.cfg.MaxExportTopics {
		return nil, domain.NewValidationError("project_id",
			fmt.Sprintf("project exceeds export limit of %d topics", s.cfg.MaxExportTopics))
	}

	exportTopics, err := s.resolveViewpoints(ctx, topics)
	if err != nil {
		return nil, err
	}

	if err := s.fetchSnapshots(ctx, exportTopics); err != nil {
		return nil, err
	}

	data, err := bcf.Export(exportTopics)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	s.log.InfoContext(ctx, "bcf exported",
		slog.String("project_id", projectID.String()),
		slog.Int("topics", len(exportTopics)),
		slog.Int("bytes", len(data)),
	)

	// Single-topic downloads are named after the topic, batches after the
	// project.
	fileBase := project.Name
	if len(exportTopics) == 1 {
		fileBase = exportTopics[0].Topic.Title
	}

	return &ExportResult{
		Data:     data,
		FileName: bcf.SafeFileName(fileBase) + ".bcf",
	}, nil
}

// selectTopics narrows the project's topics to the requested GUIDs,
// preserving insertion order. Unknown GUIDs fail the export.
func selectTopics(topics []*domain.Topic, guids []uuid.UUID) ([]*domain.Topic, error) {
	byGUID := make(map[uuid.UUID]*domain.Topic, len(topics))
	for _, t := range topics {
		byGUID[t.GUID] = t
	}

	seen := make(map[uuid.UUID]bool, len(guids))
	selected := make([]*domain.Topic, 0, len(guids))
	for _, t := range topics {
		for _, g := range guids {
			if g == t.GUID && !seen[g] {
				seen[g] = true
				selected = append(selected, t)
			}
		}
	}
	for _, g := range guids {
		if _, ok := byGUID[g]; !ok {
			return nil, fmt.Errorf("export topic %s: %w", g, domain.ErrNotFound)
		}
	}

	return selected, nil
}

// resolveViewpoints picks each topic's current viewpoint, falling back to
// the first attached one.
func (s *Service) resolveViewpoints(ctx context.Context, topics []*domain.Topic) ([]bcf.ExportTopic, error) {
	wanted := make([]uuid.UUID, 0, len(topics))
	for _, t := range topics {
		switch {
		case t.CurrentViewpoint != nil:
			wanted = append(wanted, *t.CurrentViewpoint)
		case len(t.ViewpointGUIDs) > 0:
			wanted = append(wanted, t.ViewpointGUIDs[0])
		default:
			return nil, fmt.Errorf("export topic %s: %w", t.GUID, bcf.ErrNoViewpoint)
		}
	}

	viewpoints, err := s.viewpoints.GetByGUIDs(ctx, wanted)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	result := make([]bcf.ExportTopic, len(topics))
	for i, t := range topics {
		vp, ok := viewpoints[wanted[i]]
		if !ok {
			return nil, fmt.Errorf("export topic %s: %w", t.GUID, bcf.ErrNoViewpoint)
		}
		result[i] = bcf.ExportTopic{Topic: t, Viewpoint: vp}
	}

	return result, nil
}

// fetchSnapshots loads the snapshot binaries concurrently. A missing binary
// leaves the slot nil; any other storage failure aborts the export.
func (s *Service) fetchSnapshots(ctx context.Context, topics []bcf.ExportTopic) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotFetchers)

	var mu sync.Mutex
	for i := range topics {
		if !topics[i].Viewpoint.HasSnapshot() {
			continue
		}
		g.Go(func() error {
			data, err := s.snapshots.Get(gctx, *topics[i].Viewpoint.SnapshotRef)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("export: snapshot %s: %w", topics[i].Viewpoint.SnapshotRef, err)
			}
			mu.Lock()
			topics[i].Snapshot = data
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}
