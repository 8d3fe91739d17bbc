package rdi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// ClearAll removes every issue of a project in one shot. Used by the viewer's
// "clear issues" action before loading a fresh BCF file.
func (s *Service) ClearAll(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}

	if err := s.checkProject(ctx, userID, projectID); err != nil {
		return fmt.Errorf("clear rdis: %w", err)
	}

	if err := s.topics.ClearAll(ctx, projectID); err != nil {
		return fmt.Errorf("clear rdis: %w", err)
	}

	s.log.InfoContext(ctx, "all rdis cleared",
		slog.String("project_id", projectID.String()))

	return nil
}
