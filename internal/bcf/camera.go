// Package bcf implements the BIM Collaboration Format (BCF 3.0) package
// codec: camera coordinate conversion, markup/viewpoint XML, and the ZIP
// container. It is pure and has no storage or transport dependencies.
package bcf

import "github.com/asanmartin/bimviewer-backend/internal/domain"

// ToBCFCamera converts a camera captured in the engine's Y-up space into
// BCF Z-up space. The mapping is applied independently to the view point,
// direction, and up vector:
//
//	bcf.x =  native.x
//	bcf.y =  native.z
//	bcf.z = -native.y
//
// Aspect ratio and field of view pass through unchanged. Deterministic and
// side-effect free; must be applied exactly once, at capture time.
func ToBCFCamera(c domain.Camera) domain.Camera {
	return domain.Camera{
		ViewPoint:   toBCFVector(c.ViewPoint),
		Direction:   toBCFVector(c.Direction),
		UpVector:    toBCFVector(c.UpVector),
		AspectRatio: c.AspectRatio,
		FieldOfView: c.FieldOfView,
	}
}

func toBCFVector(v domain.Vector) domain.Vector {
	return domain.Vector{X: v.X, Y: v.Z, Z: -v.Y}
}
