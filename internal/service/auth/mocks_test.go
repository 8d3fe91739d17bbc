package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)

	createCalls int
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc is nil")
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc is nil")
	}
	m.createCalls++
	return m.CreateFunc(ctx, user)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, email string) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc is nil")
	}
	return m.GenerateAccessTokenFunc(userID, email)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc is nil")
	}
	return m.ValidateAccessTokenFunc(token)
}

func defaultJWTMock() *jwtManagerMock {
	return &jwtManagerMock{
		GenerateAccessTokenFunc: func(userID uuid.UUID, email string) (string, error) {
			return "token-" + userID.String(), nil
		},
	}
}
