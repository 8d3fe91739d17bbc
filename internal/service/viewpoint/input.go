package viewpoint

import (
	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// CaptureInput holds the parameters for capturing a viewpoint.
// Camera is in the viewer's native Y-up space; Snapshot is optional and
// expected to be PNG bytes.
type CaptureInput struct {
	TopicGUID uuid.UUID
	Title     string
	Camera    domain.Camera
	Snapshot  []byte
}

// Validate checks all fields and collects all errors.
func (i CaptureInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicGUID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_guid", Message: "required"})
	}
	errs = append(errs, validateCamera(i.Camera)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds the parameters for re-capturing an existing viewpoint.
type RefreshInput struct {
	ViewpointGUID uuid.UUID
	Camera        domain.Camera
	Snapshot      []byte
}

// Validate checks all fields and collects all errors.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.ViewpointGUID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "viewpoint_guid", Message: "required"})
	}
	errs = append(errs, validateCamera(i.Camera)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateCamera(c domain.Camera) []domain.FieldError {
	var errs []domain.FieldError

	if isZero(c.Direction) {
		errs = append(errs, domain.FieldError{Field: "camera.direction", Message: "must be non-zero"})
	}
	if isZero(c.UpVector) {
		errs = append(errs, domain.FieldError{Field: "camera.up_vector", Message: "must be non-zero"})
	}
	if c.AspectRatio <= 0 {
		errs = append(errs, domain.FieldError{Field: "camera.aspect_ratio", Message: "must be positive"})
	}
	if c.FieldOfView != nil && (*c.FieldOfView <= 0 || *c.FieldOfView >= 180) {
		errs = append(errs, domain.FieldError{Field: "camera.field_of_view", Message: "must be between 0 and 180 degrees"})
	}

	return errs
}

func isZero(v domain.Vector) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
