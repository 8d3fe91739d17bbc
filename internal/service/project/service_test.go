package project

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc func(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
	ListFunc    func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)
	CreateFunc  func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	DeleteFunc  func(ctx context.Context, ownerID, projectID uuid.UUID) error
}

func (m *projectRepoMock) GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
	return m.GetByIDFunc(ctx, ownerID, projectID)
}

func (m *projectRepoMock) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	return m.ListFunc(ctx, ownerID)
}

func (m *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return m.CreateFunc(ctx, p)
}

func (m *projectRepoMock) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	return m.DeleteFunc(ctx, ownerID, projectID)
}

func newTestService(t *testing.T, repo *projectRepoMock) *Service {
	t.Helper()
	return NewService(slog.Default(), repo)
}

func TestCreateProject_Success(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	repo := &projectRepoMock{
		CreateFunc: func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
			if p.OwnerID != ownerID {
				t.Errorf("owner: got %v, want %v", p.OwnerID, ownerID)
			}
			if p.Name != "Office tower" {
				t.Errorf("name: got %q, want trimmed %q", p.Name, "Office tower")
			}
			return p, nil
		},
	}

	svc := newTestService(t, repo)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	p, err := svc.CreateProject(ctx, CreateProjectInput{Name: "  Office tower  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected generated project ID")
	}
}

func TestCreateProject_EmptyName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &projectRepoMock{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateProject(ctx, CreateProjectInput{Name: "   "})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if ve.Errors[0].Field != "name" {
		t.Errorf("field: got %q, want %q", ve.Errors[0].Field, "name")
	}
}

func TestCreateProject_NameTooLong(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &projectRepoMock{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateProject(ctx, CreateProjectInput{Name: strings.Repeat("a", 121)})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestCreateProject_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &projectRepoMock{})

	_, err := svc.CreateProject(context.Background(), CreateProjectInput{Name: "x"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("error: got %v, want ErrUnauthorized", err)
	}
}

func TestListProjects_Empty(t *testing.T) {
	t.Parallel()

	repo := &projectRepoMock{
		ListFunc: func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
			return []*domain.Project{}, nil
		},
	}

	svc := newTestService(t, repo)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := svc.ListProjects(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestGetProject_NotFound(t *testing.T) {
	t.Parallel()

	repo := &projectRepoMock{
		GetByIDFunc: func(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(t, repo)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.GetProject(ctx, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error: got %v, want ErrNotFound", err)
	}
}

func TestDeleteProject_Success(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	projectID := uuid.New()
	deleted := false

	repo := &projectRepoMock{
		DeleteFunc: func(ctx context.Context, oid, pid uuid.UUID) error {
			if oid != ownerID || pid != projectID {
				t.Errorf("delete args: got (%v, %v), want (%v, %v)", oid, pid, ownerID, projectID)
			}
			deleted = true
			return nil
		},
	}

	svc := newTestService(t, repo)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	if err := svc.DeleteProject(ctx, DeleteProjectInput{ProjectID: projectID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("Delete was not called")
	}
}
