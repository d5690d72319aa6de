package geom

import "github.com/go-gl/mathgl/mgl64"

// Ray is a point with a direction. The direction does not need to be
// normalized.
type Ray struct {
	Point     mgl64.Vec3
	Direction mgl64.Vec3
}

// RayTo builds the ray from one point towards another.
func RayTo(from, to mgl64.Vec3) Ray {
	return Ray{Point: from, Direction: to.Sub(from)}
}

// Plane is defined by a point on the plane and a normal vector.
// The normal does not need to be normalized.
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// Intersection returns the point where the ray's line crosses the plane.
// The ray must not be parallel to the plane.
func (p Plane) Intersection(ray Ray) mgl64.Vec3 {
	diff := ray.Point.Sub(p.Point)
	t := diff.Dot(p.Normal) / ray.Direction.Dot(p.Normal)
	return ray.Point.Sub(ray.Direction.Mul(t))
}

// Offset returns the plane shifted along its normal by the given distance.
func (p Plane) Offset(offset float64) Plane {
	return Plane{
		Point:  p.Point.Add(p.Normal.Normalize().Mul(offset)),
		Normal: p.Normal,
	}
}

// SignedDistance returns the distance from the plane to the point, positive
// on the side the normal points towards.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return point.Sub(p.Point).Dot(p.Normal.Normalize())
}
