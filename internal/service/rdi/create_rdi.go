package rdi

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/pkg/ctxutil"
)

// CreateRDI creates a new issue in a project. The server assigns the GUID
// and creation date; the author is taken from the authenticated identity.
func (s *Service) CreateRDI(ctx context.Context, input CreateRDIInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkProject(ctx, userID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("create rdi: %w", err)
	}

	s.warnUnknownVocabulary(ctx, input.TopicType, input.TopicStatus)

	topic, err := s.topics.Create(ctx, &domain.Topic{
		GUID:           uuid.New(),
		ProjectID:      input.ProjectID,
		Title:          strings.TrimSpace(input.Title),
		TopicType:      strings.TrimSpace(input.TopicType),
		TopicStatus:    strings.TrimSpace(input.TopicStatus),
		Label:          trimOrNil(input.Label),
		Description:    trimOrNil(input.Description),
		CreationAuthor: ctxutil.AuthorFromCtx(ctx),
		CreationDate:   time.Now().UTC(),
		DueDate:        input.DueDate,
		AssignedTo:     trimOrNil(input.AssignedTo),
		ViewpointGUIDs: []uuid.UUID{},
	})
	if err != nil {
		return nil, fmt.Errorf("create rdi: %w", err)
	}

	s.log.InfoContext(ctx, "rdi created",
		slog.String("project_id", input.ProjectID.String()),
		slog.String("guid", topic.GUID.String()),
		slog.String("topic_type", topic.TopicType),
	)

	return topic, nil
}
