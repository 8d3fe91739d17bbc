package rdi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// AddComment appends a comment to an issue. The author is the authenticated
// identity.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, &domain.Comment{
		ID:        uuid.New(),
		TopicGUID: input.TopicGUID,
		Author:    ctxutil.AuthorFromCtx(ctx),
		Body:      strings.TrimSpace(input.Body),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	return comment, nil
}

// ListComments returns an issue's comments oldest first.
func (s *Service) ListComments(ctx context.Context, topicGUID uuid.UUID) ([]domain.Comment, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if topicGUID == uuid.Nil {
		return nil, domain.NewValidationError("topic_guid", "required")
	}

	comments, err := s.comments.ListByTopic(ctx, topicGUID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}
