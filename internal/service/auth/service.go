// Package auth implements account registration and login.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	jwt      jwtManager
	hashCost int
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		jwt:      jwt,
		hashCost: hashCost,
	}
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
