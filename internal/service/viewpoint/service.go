// Package viewpoint implements viewpoint capture and refresh.
//
// Cameras arrive in the viewer's native Y-up space and are converted to BCF
// Z-up space exactly once, on the way into storage. Everything read back out
// of this service is already in BCF space.
package viewpoint

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

type viewpointRepo interface {
	GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Viewpoint, error)
	Create(ctx context.Context, vp *domain.Viewpoint) (*domain.Viewpoint, error)
	UpdateCamera(ctx context.Context, guid uuid.UUID, camera domain.Camera) error
	SetSnapshotRef(ctx context.Context, guid, ref uuid.UUID) error
}

type snapshotRepo interface {
	Get(ctx context.Context, ref uuid.UUID) ([]byte, error)
	Set(ctx context.Context, ref uuid.UUID, data []byte) error
}

type topicRepo interface {
	GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Topic, error)
	AttachViewpoint(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error
	SetCurrentViewpoint(ctx context.Context, guid, viewpointGUID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides viewpoint capture and refresh operations.
type Service struct {
	viewpoints viewpointRepo
	snapshots  snapshotRepo
	topics     topicRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new viewpoint service.
func NewService(
	log *slog.Logger,
	viewpoints viewpointRepo,
	snapshots snapshotRepo,
	topics topicRepo,
	tx txManager,
) *Service {
	return &Service{
		viewpoints: viewpoints,
		snapshots:  snapshots,
		topics:     topics,
		tx:         tx,
		log:        log.With("service", "viewpoint"),
	}
}

// GetViewpoint returns a stored viewpoint by GUID.
func (s *Service) GetViewpoint(ctx context.Context, guid uuid.UUID) (*domain.Viewpoint, error) {
	if guid == uuid.Nil {
		return nil, domain.NewValidationError("viewpoint_guid", "required")
	}
	return s.viewpoints.GetByGUID(ctx, guid)
}

// GetSnapshot returns the PNG bytes of a viewpoint's snapshot.
// Returns domain.ErrNotFound when the viewpoint has no snapshot.
func (s *Service) GetSnapshot(ctx context.Context, viewpointGUID uuid.UUID) ([]byte, error) {
	vp, err := s.GetViewpoint(ctx, viewpointGUID)
	if err != nil {
		return nil, err
	}
	if !vp.HasSnapshot() {
		return nil, domain.ErrNotFound
	}

	return s.snapshots.Get(ctx, *vp.SnapshotRef)
}
