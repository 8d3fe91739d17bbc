package rdi

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// SetCurrentViewpoint selects which attached viewpoint the viewer opens by
// default. The viewpoint must already be attached to the topic.
func (s *Service) SetCurrentViewpoint(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if topicGUID == uuid.Nil {
		return domain.NewValidationError("guid", "required")
	}
	if viewpointGUID == uuid.Nil {
		return domain.NewValidationError("viewpoint_guid", "required")
	}

	topic, err := s.topics.GetByGUID(ctx, topicGUID)
	if err != nil {
		return fmt.Errorf("set current viewpoint: %w", err)
	}
	if !slices.Contains(topic.ViewpointGUIDs, viewpointGUID) {
		return domain.NewValidationError("viewpoint_guid", "not attached to this topic")
	}

	if err := s.topics.SetCurrentViewpoint(ctx, topicGUID, viewpointGUID); err != nil {
		return fmt.Errorf("set current viewpoint: %w", err)
	}

	return nil
}
