package viewpoint

import (
	"context"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

var _ viewpointRepo = &viewpointRepoMock{}

type viewpointRepoMock struct {
	GetByGUIDFunc      func(ctx context.Context, guid uuid.UUID) (*domain.Viewpoint, error)
	CreateFunc         func(ctx context.Context, vp *domain.Viewpoint) (*domain.Viewpoint, error)
	UpdateCameraFunc   func(ctx context.Context, guid uuid.UUID, camera domain.Camera) error
	SetSnapshotRefFunc func(ctx context.Context, guid, ref uuid.UUID) error
}

func (m *viewpointRepoMock) GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Viewpoint, error) {
	return m.GetByGUIDFunc(ctx, guid)
}

func (m *viewpointRepoMock) Create(ctx context.Context, vp *domain.Viewpoint) (*domain.Viewpoint, error) {
	return m.CreateFunc(ctx, vp)
}

func (m *viewpointRepoMock) UpdateCamera(ctx context.Context, guid uuid.UUID, camera domain.Camera) error {
	return m.UpdateCameraFunc(ctx, guid, camera)
}

func (m *viewpointRepoMock) SetSnapshotRef(ctx context.Context, guid, ref uuid.UUID) error {
	return m.SetSnapshotRefFunc(ctx, guid, ref)
}

var _ snapshotRepo = &snapshotRepoMock{}

type snapshotRepoMock struct {
	GetFunc func(ctx context.Context, ref uuid.UUID) ([]byte, error)
	SetFunc func(ctx context.Context, ref uuid.UUID, data []byte) error

	setCalls int
}

func (m *snapshotRepoMock) Get(ctx context.Context, ref uuid.UUID) ([]byte, error) {
	return m.GetFunc(ctx, ref)
}

func (m *snapshotRepoMock) Set(ctx context.Context, ref uuid.UUID, data []byte) error {
	m.setCalls++
	if m.SetFunc == nil {
		return nil
	}
	return m.SetFunc(ctx, ref, data)
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByGUIDFunc           func(ctx context.Context, guid uuid.UUID) (*domain.Topic, error)
	AttachViewpointFunc     func(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error
	SetCurrentViewpointFunc func(ctx context.Context, guid, viewpointGUID uuid.UUID) error
}

func (m *topicRepoMock) GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Topic, error) {
	return m.GetByGUIDFunc(ctx, guid)
}

func (m *topicRepoMock) AttachViewpoint(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error {
	return m.AttachViewpointFunc(ctx, topicGUID, viewpointGUID)
}

func (m *topicRepoMock) SetCurrentViewpoint(ctx context.Context, guid, viewpointGUID uuid.UUID) error {
	return m.SetCurrentViewpointFunc(ctx, guid, viewpointGUID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}

func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func okTopicMock() *topicRepoMock {
	return &topicRepoMock{
		GetByGUIDFunc: func(ctx context.Context, guid uuid.UUID) (*domain.Topic, error) {
			return &domain.Topic{GUID: guid}, nil
		},
		AttachViewpointFunc: func(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error {
			return nil
		},
		SetCurrentViewpointFunc: func(ctx context.Context, guid, viewpointGUID uuid.UUID) error {
			return nil
		},
	}
}
