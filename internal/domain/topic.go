package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a BCF issue anchored in a project. GUID and CreationDate are
// immutable after creation; they survive export and re-import unchanged.
type Topic struct {
	GUID           uuid.UUID
	ProjectID      uuid.UUID
	Title          string
	TopicType      string
	TopicStatus    string
	Label          *string
	Description    *string
	CreationAuthor string
	CreationDate   time.Time
	DueDate        *time.Time
	AssignedTo     *string

	// ViewpointGUIDs lists the attached viewpoints in attach order.
	// CurrentViewpoint points at the one shown by default; nil means the
	// topic has no viewpoint yet.
	ViewpointGUIDs   []uuid.UUID
	CurrentViewpoint *uuid.UUID
}

// TopicUpdateParams carries a partial update. Nil fields are left unchanged.
type TopicUpdateParams struct {
	Title       *string
	TopicType   *string
	TopicStatus *string
	Label       *string
	Description *string
	DueDate     *time.Time
	AssignedTo  *string
}

// Comment is a free-text note on a topic.
type Comment struct {
	ID        uuid.UUID
	TopicGUID uuid.UUID
	Author    string
	Body      string
	CreatedAt time.Time
}
