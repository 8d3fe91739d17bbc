package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vector is a point or direction in 3D space.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Camera is a perspective camera in BCF space (Z up). Viewpoints are
// converted from the viewer's native Y-up space exactly once, at capture;
// everything downstream treats the stored vectors as final.
type Camera struct {
	ViewPoint   Vector
	Direction   Vector
	UpVector    Vector
	AspectRatio float64
	FieldOfView *float64
}

// Viewpoint is a captured camera state, optionally with a snapshot image.
type Viewpoint struct {
	GUID        uuid.UUID
	Title       string
	Camera      Camera
	SnapshotRef *uuid.UUID
}

// HasSnapshot reports whether the viewpoint references a snapshot binary.
func (v *Viewpoint) HasSnapshot() bool {
	return v.SnapshotRef != nil
}

// Snapshot is a stored PNG image, addressed by its own reference.
type Snapshot struct {
	Ref       uuid.UUID
	Data      []byte
	CreatedAt time.Time
}
