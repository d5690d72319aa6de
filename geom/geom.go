// Package geom provides the 3D primitives the puzzle builder is made of:
// planes, rays, axis-angle rotations, convex polyhedron generation and a
// floating-point tolerant point map.
//
// All vector math is done on mgl64.Vec3 values. Geometric construction
// accumulates rounding error, so positions are never compared exactly;
// ApproxEqual and PointMap absorb the drift.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used for approximate position comparisons.
const Epsilon = 1e-8

// ApproxEqual reports whether two points are within Epsilon on every axis.
func ApproxEqual(a, b mgl64.Vec3) bool {
	return math.Abs(a.X()-b.X()) < Epsilon &&
		math.Abs(a.Y()-b.Y()) < Epsilon &&
		math.Abs(a.Z()-b.Z()) < Epsilon
}

// Average returns the centroid of a set of points.
func Average(points []mgl64.Vec3) mgl64.Vec3 {
	sum := mgl64.Vec3{}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}
