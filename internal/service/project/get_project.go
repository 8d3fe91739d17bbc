package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// GetProject returns a single project owned by the authenticated user.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	p, err := s.projects.GetByID(ctx, ownerID, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return p, nil
}
