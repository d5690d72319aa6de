package geom

import "github.com/go-gl/mathgl/mgl64"

// Rotation is an axis-angle rotation backed by a quaternion.
type Rotation struct {
	q mgl64.Quat
}

// NewRotation builds the rotation of the given angle (radians) around the
// axis. The axis does not need to be normalized. A zero angle yields the
// identity rotation.
func NewRotation(axis mgl64.Vec3, angle float64) Rotation {
	if angle == 0 {
		return Rotation{q: mgl64.QuatIdent()}
	}
	return Rotation{q: mgl64.QuatRotate(angle, axis.Normalize())}
}

// RotationVector builds a rotation whose axis is the vector's direction and
// whose angle is the vector's magnitude.
func RotationVector(v mgl64.Vec3) Rotation {
	amount := v.Len()
	if amount == 0 {
		return Rotation{q: mgl64.QuatIdent()}
	}
	return Rotation{q: mgl64.QuatRotate(amount, v.Mul(1/amount))}
}

// RotatePoint rotates a point about the origin.
func (r Rotation) RotatePoint(point mgl64.Vec3) mgl64.Vec3 {
	return r.q.Rotate(point)
}

// RotateAboutPoint rotates a point as though the rotation axis passed
// through the given pivot instead of the origin.
func (r Rotation) RotateAboutPoint(point, pivot mgl64.Vec3) mgl64.Vec3 {
	return r.q.Rotate(point.Sub(pivot)).Add(pivot)
}

// Combine returns the rotation equivalent to applying a, then b.
func Combine(a, b Rotation) Rotation {
	return Rotation{q: b.q.Mul(a.q)}
}

// Reflection is a mirror reflection through a plane that passes through the
// origin.
type Reflection struct {
	normal mgl64.Vec3 // unit
}

// NewReflection builds the reflection through the origin plane with the
// given normal.
func NewReflection(normal mgl64.Vec3) Reflection {
	return Reflection{normal: normal.Normalize()}
}

// ReflectPoint mirrors a point through the reflection plane.
func (m Reflection) ReflectPoint(point mgl64.Vec3) mgl64.Vec3 {
	return point.Sub(m.normal.Mul(2 * point.Dot(m.normal)))
}
