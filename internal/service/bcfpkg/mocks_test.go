package bcfpkg

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	ListFunc            func(ctx context.Context, projectID uuid.UUID) ([]*domain.Topic, error)
	ExistByGUIDsFunc    func(ctx context.Context, guids []uuid.UUID) (map[uuid.UUID]bool, error)
	CreateFunc          func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	AttachViewpointFunc func(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error

	createCalls int
}

func (m *topicRepoMock) List(ctx context.Context, projectID uuid.UUID) ([]*domain.Topic, error) {
	return m.ListFunc(ctx, projectID)
}

func (m *topicRepoMock) ExistByGUIDs(ctx context.Context, guids []uuid.UUID) (map[uuid.UUID]bool, error) {
	return m.ExistByGUIDsFunc(ctx, guids)
}

func (m *topicRepoMock) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	m.createCalls++
	return m.CreateFunc(ctx, t)
}

func (m *topicRepoMock) AttachViewpoint(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error {
	if m.AttachViewpointFunc == nil {
		return nil
	}
	return m.AttachViewpointFunc(ctx, topicGUID, viewpointGUID)
}

var _ viewpointRepo = &viewpointRepoMock{}

type viewpointRepoMock struct {
	GetByGUIDsFunc func(ctx context.Context, guids []uuid.UUID) (map[uuid.UUID]*domain.Viewpoint, error)
	CreateFunc     func(ctx context.Context, vp *domain.Viewpoint) (*domain.Viewpoint, error)
}

func (m *viewpointRepoMock) GetByGUIDs(ctx context.Context, guids []uuid.UUID) (map[uuid.UUID]*domain.Viewpoint, error) {
	return m.GetByGUIDsFunc(ctx, guids)
}

func (m *viewpointRepoMock) Create(ctx context.Context, vp *domain.Viewpoint) (*domain.Viewpoint, error) {
	return m.CreateFunc(ctx, vp)
}

var _ snapshotRepo = &snapshotRepoMock{}

type snapshotRepoMock struct {
	GetFunc func(ctx context.Context, ref uuid.UUID) ([]byte, error)
	SetFunc func(ctx context.Context, ref uuid.UUID, data []byte) error

	mu       sync.Mutex
	setCalls int
}

func (m *snapshotRepoMock) Get(ctx context.Context, ref uuid.UUID) ([]byte, error) {
	return m.GetFunc(ctx, ref)
}

func (m *snapshotRepoMock) Set(ctx context.Context, ref uuid.UUID, data []byte) error {
	m.mu.Lock()
	m.setCalls++
	m.mu.Unlock()
	if m.SetFunc == nil {
		return nil
	}
	return m.SetFunc(ctx, ref, data)
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc func(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
}

func (m *projectRepoMock) GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
	return m.GetByIDFunc(ctx, ownerID, projectID)
}

func okProjectMock(name string) *projectRepoMock {
	return &projectRepoMock{
		GetByIDFunc: func(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
			return &domain.Project{ID: projectID, OwnerID: ownerID, Name: name}, nil
		},
	}
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
