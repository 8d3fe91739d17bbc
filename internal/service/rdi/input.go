package rdi

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxCommentLen     = 2000
)

// CreateRDIInput holds the parameters for creating an issue.
type CreateRDIInput struct {
	ProjectID   uuid.UUID
	Title       string
	TopicType   string
	TopicStatus string
	Label       *string
	Description *string
	DueDate     *time.Time
	AssignedTo  *string
}

// Validate checks all fields and collects all errors. Title, type, status
// and due date are the mandatory creation fields.
func (i CreateRDIInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if strings.TrimSpace(i.TopicType) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_type", Message: "required"})
	}
	if strings.TrimSpace(i.TopicStatus) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_status", Message: "required"})
	}
	if i.DueDate == nil {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	}

	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRDIInput holds a partial update. Nil fields are left unchanged.
type UpdateRDIInput struct {
	GUID        uuid.UUID
	Title       *string
	TopicType   *string
	TopicStatus *string
	Label       *string
	Description *string
	DueDate     *time.Time
	AssignedTo  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateRDIInput) Validate() error {
	var errs []domain.FieldError

	if i.GUID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "guid", Message: "required"})
	}
	if i.Title == nil && i.TopicType == nil && i.TopicStatus == nil && i.Label == nil &&
		i.Description == nil && i.DueDate == nil && i.AssignedTo == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.TopicType != nil && strings.TrimSpace(*i.TopicType) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_type", Message: "required"})
	}
	if i.TopicStatus != nil && strings.TrimSpace(*i.TopicStatus) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_status", Message: "required"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeStatusInput holds the parameters for a status transition.
type ChangeStatusInput struct {
	GUID   uuid.UUID
	Status string
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.GUID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "guid", Message: "required"})
	}
	if strings.TrimSpace(i.Status) == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRDIsInput holds the list filters. Empty filters match everything.
type ListRDIsInput struct {
	ProjectID    uuid.UUID
	TypeFilter   string
	StatusFilter string
}

// Validate checks all fields and collects all errors.
func (i ListRDIsInput) Validate() error {
	if i.ProjectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}
	return nil
}

// AddCommentInput holds the parameters for commenting on an issue.
type AddCommentInput struct {
	TopicGUID uuid.UUID
	Body      string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicGUID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_guid", Message: "required"})
	}
	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(body) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
