package rdi

import (
	"context"
	"fmt"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// ListRDIs returns the project's issues in insertion order, optionally
// filtered by type and status. Filtering happens here rather than in SQL so
// both filters compose with the vocabulary's free-text values.
func (s *Service) ListRDIs(ctx context.Context, input ListRDIsInput) ([]*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkProject(ctx, userID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("list rdis: %w", err)
	}

	topics, err := s.topics.List(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("list rdis: %w", err)
	}

	if input.TypeFilter == "" && input.StatusFilter == "" {
		return topics, nil
	}

	filtered := []*domain.Topic{}
	for _, t := range topics {
		if input.TypeFilter != "" && t.TopicType != input.TypeFilter {
			continue
		}
		if input.StatusFilter != "" && t.TopicStatus != input.StatusFilter {
			continue
		}
		filtered = append(filtered, t)
	}

	return filtered, nil
}
