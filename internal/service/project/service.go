// Package project implements project management operations.
package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

type projectRepo interface {
	GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, ownerID, projectID uuid.UUID) error
}

// Service provides project management operations.
type Service struct {
	projects projectRepo
	log      *slog.Logger
}

// NewService creates a new project service.
func NewService(log *slog.Logger, projects projectRepo) *Service {
	return &Service{
		projects: projects,
		log:      log.With("service", "project"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
