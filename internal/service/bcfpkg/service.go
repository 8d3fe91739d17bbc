// Package bcfpkg orchestrates BCF archive export and import on top of the
// codec in internal/bcf.
package bcfpkg

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/config"
	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

type topicRepo interface {
	List(ctx context.Context, projectID uuid.UUID) ([]*domain.Topic, error)
	ExistByGUIDs(ctx context.Context, guids []uuid.UUID) (map[uuid.UUID]bool, error)
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	AttachViewpoint(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error
}

type viewpointRepo interface {
	GetByGUIDs(ctx context.Context, guids []uuid.UUID) (map[uuid.UUID]*domain.Viewpoint, error)
	Create(ctx context.Context, vp *domain.Viewpoint) (*domain.Viewpoint, error)
}

type snapshotRepo interface {
	Get(ctx context.Context, ref uuid.UUID) ([]byte, error)
	Set(ctx context.Context, ref uuid.UUID, data []byte) error
}

type projectRepo interface {
	GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides BCF archive export and import.
type Service struct {
	topics     topicRepo
	viewpoints viewpointRepo
	snapshots  snapshotRepo
	projects   projectRepo
	tx         txManager
	cfg        config.BCFConfig
	log        *slog.Logger
}

// NewService creates a new BCF package service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	viewpoints viewpointRepo,
	snapshots snapshotRepo,
	projects projectRepo,
	tx txManager,
	cfg config.BCFConfig,
) *Service {
	return &Service{
		topics:     topics,
		viewpoints: viewpoints,
		snapshots:  snapshots,
		projects:   projects,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "bcfpkg"),
	}
}
