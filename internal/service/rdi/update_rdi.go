package rdi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// UpdateRDI applies a partial update to an issue. GUID, creation author and
// creation date are immutable.
func (s *Service) UpdateRDI(ctx context.Context, input UpdateRDIInput) (*domain.Topic, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	newType, newStatus := "", ""
	if input.TopicType != nil {
		newType = *input.TopicType
	}
	if input.TopicStatus != nil {
		newStatus = *input.TopicStatus
	}
	s.warnUnknownVocabulary(ctx, newType, newStatus)

	topic, err := s.topics.Update(ctx, input.GUID, domain.TopicUpdateParams{
		Title:       input.Title,
		TopicType:   input.TopicType,
		TopicStatus: input.TopicStatus,
		Label:       input.Label,
		Description: input.Description,
		DueDate:     input.DueDate,
		AssignedTo:  input.AssignedTo,
	})
	if err != nil {
		return nil, fmt.Errorf("update rdi: %w", err)
	}

	s.log.InfoContext(ctx, "rdi updated",
		slog.String("guid", topic.GUID.String()))

	return topic, nil
}
