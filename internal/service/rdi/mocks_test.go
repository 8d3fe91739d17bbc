package rdi

import (
	"context"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByGUIDFunc           func(ctx context.Context, guid uuid.UUID) (*domain.Topic, error)
	ListFunc                func(ctx context.Context, projectID uuid.UUID) ([]*domain.Topic, error)
	CreateFunc              func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	UpdateFunc              func(ctx context.Context, guid uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	SetCurrentViewpointFunc func(ctx context.Context, guid, viewpointGUID uuid.UUID) error
	DeleteFunc              func(ctx context.Context, guid uuid.UUID) error
	ClearAllFunc            func(ctx context.Context, projectID uuid.UUID) error

	updateCalls int
	deleteCalls int
}

func (m *topicRepoMock) GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Topic, error) {
	return m.GetByGUIDFunc(ctx, guid)
}

func (m *topicRepoMock) List(ctx context.Context, projectID uuid.UUID) ([]*domain.Topic, error) {
	return m.ListFunc(ctx, projectID)
}

func (m *topicRepoMock) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	return m.CreateFunc(ctx, t)
}

func (m *topicRepoMock) Update(ctx context.Context, guid uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	m.updateCalls++
	return m.UpdateFunc(ctx, guid, params)
}

func (m *topicRepoMock) SetCurrentViewpoint(ctx context.Context, guid, viewpointGUID uuid.UUID) error {
	return m.SetCurrentViewpointFunc(ctx, guid, viewpointGUID)
}

func (m *topicRepoMock) Delete(ctx context.Context, guid uuid.UUID) error {
	m.deleteCalls++
	return m.DeleteFunc(ctx, guid)
}

func (m *topicRepoMock) ClearAll(ctx context.Context, projectID uuid.UUID) error {
	return m.ClearAllFunc(ctx, projectID)
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListByTopicFunc func(ctx context.Context, topicGUID uuid.UUID) ([]domain.Comment, error)
	CreateFunc      func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
}

func (m *commentRepoMock) ListByTopic(ctx context.Context, topicGUID uuid.UUID) ([]domain.Comment, error) {
	return m.ListByTopicFunc(ctx, topicGUID)
}

func (m *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	return m.CreateFunc(ctx, c)
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc func(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
}

func (m *projectRepoMock) GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
	return m.GetByIDFunc(ctx, ownerID, projectID)
}

func okProjectMock() *projectRepoMock {
	return &projectRepoMock{
		GetByIDFunc: func(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
			return &domain.Project{ID: projectID, OwnerID: ownerID}, nil
		},
	}
}
