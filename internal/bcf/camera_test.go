package bcf

import (
	"testing"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

func TestToBCFCamera_VectorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   domain.Vector
		want domain.Vector
	}{
		{"x axis is a fixed point", domain.Vector{X: 1, Y: 0, Z: 0}, domain.Vector{X: 1, Y: 0, Z: 0}},
		{"y and z swap with sign flip", domain.Vector{X: 1, Y: 2, Z: 3}, domain.Vector{X: 1, Y: 3, Z: -2}},
		{"zero vector", domain.Vector{}, domain.Vector{}},
		{"negative components", domain.Vector{X: -1, Y: -2, Z: -3}, domain.Vector{X: -1, Y: -3, Z: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := toBCFVector(tt.in)
			if got != tt.want {
				t.Errorf("toBCFVector(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToBCFCamera_AppliesToAllThreeVectors(t *testing.T) {
	t.Parallel()

	fov := 60.0
	in := domain.Camera{
		ViewPoint:   domain.Vector{X: 10, Y: 20, Z: 30},
		Direction:   domain.Vector{X: 0, Y: 0, Z: -1},
		UpVector:    domain.Vector{X: 0, Y: 1, Z: 0},
		AspectRatio: 1.5,
		FieldOfView: &fov,
	}

	got := ToBCFCamera(in)

	if got.ViewPoint != (domain.Vector{X: 10, Y: 30, Z: -20}) {
		t.Errorf("view point: got %v", got.ViewPoint)
	}
	if got.Direction != (domain.Vector{X: 0, Y: -1, Z: 0}) {
		t.Errorf("direction: got %v", got.Direction)
	}
	if got.UpVector != (domain.Vector{X: 0, Y: 0, Z: -1}) {
		t.Errorf("up vector: got %v", got.UpVector)
	}
	if got.AspectRatio != 1.5 {
		t.Errorf("aspect ratio must pass through, got %v", got.AspectRatio)
	}
	if got.FieldOfView == nil || *got.FieldOfView != 60.0 {
		t.Errorf("field of view must pass through, got %v", got.FieldOfView)
	}
}

func TestToBCFCamera_IsDeterministic(t *testing.T) {
	t.Parallel()

	in := domain.Camera{
		ViewPoint: domain.Vector{X: 1.25, Y: -7.5, Z: 0.001},
		Direction: domain.Vector{X: 0.577, Y: 0.577, Z: 0.577},
		UpVector:  domain.Vector{X: 0, Y: 1, Z: 0},
	}
	if ToBCFCamera(in) != ToBCFCamera(in) {
		t.Error("same input must yield identical output")
	}
}

func TestIsPNG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"valid signature", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, true},
		{"jpeg signature", []byte{0xFF, 0xD8, 0xFF, 0xE0}, false},
		{"truncated", []byte{0x89, 0x50}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsPNG(tt.data); got != tt.want {
				t.Errorf("IsPNG = %v, want %v", got, tt.want)
			}
		})
	}
}
