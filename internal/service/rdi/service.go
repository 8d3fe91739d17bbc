// Package rdi implements the issue (RDI) lifecycle: creation, listing with
// filters, partial updates, status changes, comments and bulk clearing.
package rdi

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

type topicRepo interface {
	GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context, projectID uuid.UUID) ([]*domain.Topic, error)
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, guid uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	SetCurrentViewpoint(ctx context.Context, guid, viewpointGUID uuid.UUID) error
	Delete(ctx context.Context, guid uuid.UUID) error
	ClearAll(ctx context.Context, projectID uuid.UUID) error
}

type commentRepo interface {
	ListByTopic(ctx context.Context, topicGUID uuid.UUID) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
}

// Service provides RDI management operations.
type Service struct {
	topics   topicRepo
	comments commentRepo
	projects projectRepo
	vocab    domain.Vocabulary
	log      *slog.Logger
}

// NewService creates a new RDI service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	comments commentRepo,
	projects projectRepo,
	vocab domain.Vocabulary,
) *Service {
	return &Service{
		topics:   topics,
		comments: comments,
		projects: projects,
		vocab:    vocab,
		log:      log.With("service", "rdi"),
	}
}

// checkProject verifies the project exists and belongs to the caller.
func (s *Service) checkProject(ctx context.Context, ownerID, projectID uuid.UUID) error {
	_, err := s.projects.GetByID(ctx, ownerID, projectID)
	return err
}

// warnUnknownVocabulary logs values outside the configured sets. Unknown
// values are stored as-is: the vocabulary is a hint for the UI, not a schema.
func (s *Service) warnUnknownVocabulary(ctx context.Context, topicType, topicStatus string) {
	if topicType != "" && !s.vocab.KnownType(topicType) {
		s.log.WarnContext(ctx, "topic type outside configured vocabulary",
			slog.String("topic_type", topicType))
	}
	if topicStatus != "" && !s.vocab.KnownStatus(topicStatus) {
		s.log.WarnContext(ctx, "topic status outside configured vocabulary",
			slog.String("topic_status", topicStatus))
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
