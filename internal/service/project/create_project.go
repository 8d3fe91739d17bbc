package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// CreateProject creates a new project for the authenticated user.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.projects.Create(ctx, &domain.Project{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", ownerID.String()),
		slog.String("project_id", p.ID.String()),
	)

	return p, nil
}
