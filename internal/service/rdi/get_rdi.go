package rdi

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// GetRDI returns a single issue by GUID.
func (s *Service) GetRDI(ctx context.Context, guid uuid.UUID) (*domain.Topic, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if guid == uuid.Nil {
		return nil, domain.NewValidationError("guid", "required")
	}

	topic, err := s.topics.GetByGUID(ctx, guid)
	if err != nil {
		return nil, fmt.Errorf("get rdi: %w", err)
	}

	return topic, nil
}
