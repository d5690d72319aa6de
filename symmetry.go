package prism

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/prism/geom"
	"github.com/akmonengine/prism/perm"
)

// Symmetry is a rigid motion (rotation or mirrored rotation) of the solid
// that maps the puzzle's turn set onto itself.
type Symmetry struct {
	// FaceMap permutes face indices (pull form, like a turn's face map).
	FaceMap perm.Bijection
	// TurnMap maps each turn index to the turn it becomes under the
	// symmetry: conjugating turn t's face map by FaceMap yields turn
	// TurnMap[t]'s face map exactly.
	TurnMap perm.Bijection
}

// Symmetries returns the puzzle's symmetry group, identity included.
func (p *Puzzle) Symmetries() []Symmetry {
	return p.symmetries
}

// transform is a candidate rigid motion: an optional mirror reflection
// followed by a rotation.
type transform struct {
	mirror   bool
	mirrorer geom.Reflection
	rotation geom.Rotation
}

func (t transform) apply(point mgl64.Vec3) mgl64.Vec3 {
	if t.mirror {
		point = t.mirrorer.ReflectPoint(point)
	}
	return t.rotation.RotatePoint(point)
}

// discoverSymmetries finds every rotation (and mirrored rotation) of the
// polyhedron under which the set of turn face maps is invariant.
//
// Candidates are enumerated by aligning each polyhedron face to the first
// ("top") face with each of its vertices leading, optionally composed with
// one mirror reflection. Each candidate is resolved to a face permutation
// through the face-center map, then validated by conjugating every turn's
// face map and requiring an exact match with an existing turn. Candidates
// that are symmetries of the bare polyhedron but not of this cut structure
// are discarded.
func discoverSymmetries(p *Puzzle, poly *geom.Polyhedron, centerIndex *geom.PointMap[int]) []Symmetry {
	top := poly.Faces[0]
	topCenter := top.Center()
	topAxis := topCenter.Normalize()
	topVertexRef := projectOffAxis(top.Vertices[0], topAxis)

	// Mirror plane through the top axis and the top face's first vertex;
	// for a regular polyhedron this plane is a mirror symmetry.
	mirrorer := geom.NewReflection(topAxis.Cross(top.Vertices[0].Normalize()))

	turnByKey := make(map[string]int, len(p.Turns))
	for i, t := range p.Turns {
		turnByKey[t.FaceMap.Key()] = i
	}

	faceCenters := make([]mgl64.Vec3, len(p.Faces))
	for i, face := range p.Faces {
		faceCenters[i] = face.Face.Center()
	}

	var symmetries []Symmetry
	seen := make(map[string]bool)

	numTopRotations := len(top.Vertices)
	for _, face := range poly.Faces {
		toTop := rotationToTop(face.Center(), topCenter)
		// Angle that brings the face's first vertex onto the top face's
		// first vertex, measured around the top axis.
		transported := projectOffAxis(toTop.RotatePoint(face.Vertices[0]), topAxis)
		alignAngle := signedAngle(transported, topVertexRef, topAxis)

		for k := range numTopRotations {
			angle := alignAngle + 2*math.Pi*float64(k)/float64(numTopRotations)
			rotation := geom.Combine(toTop, geom.NewRotation(topAxis, angle))

			for _, mirror := range []bool{false, true} {
				candidate := transform{mirror: mirror, mirrorer: mirrorer, rotation: rotation}
				symmetry, ok := resolveSymmetry(p, candidate, faceCenters, centerIndex, turnByKey)
				if !ok || seen[symmetry.FaceMap.Key()] {
					continue
				}
				seen[symmetry.FaceMap.Key()] = true
				symmetries = append(symmetries, symmetry)
			}
		}
	}
	return symmetries
}

// resolveSymmetry turns a candidate rigid motion into a face permutation
// and checks that conjugating every turn by it lands on an existing turn.
func resolveSymmetry(
	p *Puzzle,
	candidate transform,
	faceCenters []mgl64.Vec3,
	centerIndex *geom.PointMap[int],
	turnByKey map[string]int,
) (Symmetry, bool) {
	pushed := make(perm.Bijection, len(faceCenters))
	for i, center := range faceCenters {
		target, ok := centerIndex.Get(candidate.apply(center))
		if !ok {
			return Symmetry{}, false
		}
		pushed[i] = target
	}
	faceMap := pushed.Invert()
	inverse := pushed

	turnMap := make(perm.Bijection, len(p.Turns))
	for i, t := range p.Turns {
		conjugated := faceMap.Apply(t.FaceMap).Apply(inverse)
		match, ok := turnByKey[conjugated.Key()]
		if !ok {
			return Symmetry{}, false
		}
		turnMap[i] = match
	}
	return Symmetry{FaceMap: faceMap, TurnMap: turnMap}, true
}

// rotationToTop returns the rotation that moves one face center direction
// onto another.
func rotationToTop(from, to mgl64.Vec3) geom.Rotation {
	fromUnit := from.Normalize()
	toUnit := to.Normalize()
	axis := fromUnit.Cross(toUnit)
	if axis.Len() < geom.Epsilon {
		if fromUnit.Dot(toUnit) > 0 {
			return geom.NewRotation(mgl64.Vec3{0, 0, 1}, 0)
		}
		// Opposite face: rotate half a turn about any perpendicular axis.
		return geom.NewRotation(anyPerpendicular(fromUnit), math.Pi)
	}
	angle := math.Acos(mgl64.Clamp(fromUnit.Dot(toUnit), -1, 1))
	return geom.NewRotation(axis, angle)
}

// projectOffAxis removes a point's component along an axis.
func projectOffAxis(point, axis mgl64.Vec3) mgl64.Vec3 {
	return point.Sub(axis.Mul(point.Dot(axis)))
}

// signedAngle returns the angle from a to b around the axis, in (-pi, pi].
func signedAngle(a, b, axis mgl64.Vec3) float64 {
	return math.Atan2(a.Cross(b).Dot(axis), a.Dot(b))
}

func anyPerpendicular(v mgl64.Vec3) mgl64.Vec3 {
	other := mgl64.Vec3{1, 0, 0}
	if math.Abs(v.X()) > 0.9 {
		other = mgl64.Vec3{0, 1, 0}
	}
	return v.Cross(other)
}
