package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// DeleteProject removes a project and all its topics.
func (s *Service) DeleteProject(ctx context.Context, input DeleteProjectInput) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, ownerID, input.ProjectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", ownerID.String()),
		slog.String("project_id", input.ProjectID.String()),
	)

	return nil
}
