package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 120 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}

	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 1000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteProjectInput holds the parameters for deleting a project.
type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteProjectInput) Validate() error {
	if i.ProjectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}
	return nil
}
