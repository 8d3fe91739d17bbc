package rdi

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// ChangeStatus moves an issue to a new status. An empty status never reaches
// the store; it fails validation first.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*domain.Topic, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	s.warnUnknownVocabulary(ctx, "", status)

	topic, err := s.topics.Update(ctx, input.GUID, domain.TopicUpdateParams{
		TopicStatus: &status,
	})
	if err != nil {
		return nil, fmt.Errorf("change status: %w", err)
	}

	s.log.InfoContext(ctx, "rdi status changed",
		slog.String("guid", topic.GUID.String()),
		slog.String("status", status),
	)

	return topic, nil
}
