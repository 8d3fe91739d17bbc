package rdi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// DeleteRDI removes an issue. Its viewpoints and snapshots stay behind until
// the cleanup job purges the unreferenced ones.
func (s *Service) DeleteRDI(ctx context.Context, guid uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if guid == uuid.Nil {
		return domain.NewValidationError("guid", "required")
	}

	if err := s.topics.Delete(ctx, guid); err != nil {
		return fmt.Errorf("delete rdi: %w", err)
	}

	s.log.InfoContext(ctx, "rdi deleted",
		slog.String("guid", guid.String()))

	return nil
}
