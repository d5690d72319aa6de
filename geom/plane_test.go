package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlaneIntersection(t *testing.T) {
	tests := []struct {
		name     string
		plane    Plane
		ray      Ray
		expected mgl64.Vec3
	}{
		{
			"axis-aligned hit",
			Plane{Point: mgl64.Vec3{0, 0, 1}, Normal: mgl64.Vec3{0, 0, 1}},
			RayTo(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 2}),
			mgl64.Vec3{0, 0, 1},
		},
		{
			"diagonal ray",
			Plane{Point: mgl64.Vec3{0, 0, 1}, Normal: mgl64.Vec3{0, 0, 1}},
			RayTo(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}),
			mgl64.Vec3{1, 1, 1},
		},
		{
			"behind the origin",
			Plane{Point: mgl64.Vec3{0, 0, -1}, Normal: mgl64.Vec3{0, 0, 1}},
			RayTo(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}),
			mgl64.Vec3{0, 0, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.plane.Intersection(tt.ray)
			if !ApproxEqual(result, tt.expected) {
				t.Errorf("Intersection = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPlaneOffset(t *testing.T) {
	plane := Plane{Point: mgl64.Vec3{0, 0, 1}, Normal: mgl64.Vec3{0, 0, 2}}
	offset := plane.Offset(0.5)
	if !ApproxEqual(offset.Point, mgl64.Vec3{0, 0, 1.5}) {
		t.Errorf("Offset point = %v, want (0, 0, 1.5)", offset.Point)
	}
	// The normal keeps its original length.
	if !ApproxEqual(offset.Normal, plane.Normal) {
		t.Errorf("Offset normal = %v, want %v", offset.Normal, plane.Normal)
	}
}

func TestSignedDistance(t *testing.T) {
	plane := Plane{Point: mgl64.Vec3{0, 0, 1}, Normal: mgl64.Vec3{0, 0, 5}}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected float64
	}{
		{"above", mgl64.Vec3{3, 4, 3}, 2},
		{"below", mgl64.Vec3{0, 0, 0}, -1},
		{"on plane", mgl64.Vec3{7, -2, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := plane.SignedDistance(tt.point)
			if diff := result - tt.expected; diff > Epsilon || diff < -Epsilon {
				t.Errorf("SignedDistance(%v) = %v, want %v", tt.point, result, tt.expected)
			}
		})
	}
}
