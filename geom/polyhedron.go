package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is an ordered list of coplanar vertices, wound consistently with the
// outward orientation of the solid it belongs to.
type Face struct {
	Vertices []mgl64.Vec3
}

// Edge is an unordered pair of vertices.
type Edge struct {
	A, B mgl64.Vec3
}

// ApproxEqual reports whether two edges join the same two positions,
// in either direction.
func (e Edge) ApproxEqual(other Edge) bool {
	return (ApproxEqual(e.A, other.A) && ApproxEqual(e.B, other.B)) ||
		(ApproxEqual(e.A, other.B) && ApproxEqual(e.B, other.A))
}

// Edges returns the face's edges, one per vertex, wrapping around.
func (f Face) Edges() []Edge {
	edges := make([]Edge, len(f.Vertices))
	for i, a := range f.Vertices {
		edges[i] = Edge{A: a, B: f.Vertices[(i+1)%len(f.Vertices)]}
	}
	return edges
}

// RotateAboutAxis rotates the face about an axis positioned in space.
// The vertex order is reversed because the fold flips the winding of the
// face; without the flip subsequent folds go the wrong direction.
func (f Face) RotateAboutAxis(rotationVector, axisPosition mgl64.Vec3) Face {
	r := RotationVector(rotationVector)
	vertices := make([]mgl64.Vec3, len(f.Vertices))
	for i, vertex := range f.Vertices {
		vertices[len(vertices)-1-i] = r.RotateAboutPoint(vertex, axisPosition)
	}
	return Face{Vertices: vertices}
}

// Center returns the centroid of the face.
func (f Face) Center() mgl64.Vec3 {
	return Average(f.Vertices)
}

// Plane returns the plane the face lies in. The normal points outward for
// faces wound consistently with the solid.
func (f Face) Plane() Plane {
	edge1 := f.Vertices[1].Sub(f.Vertices[0])
	edge2 := f.Vertices[2].Sub(f.Vertices[1])
	return Plane{
		Point:  f.Center(),
		Normal: edge1.Cross(edge2),
	}
}

// Polyhedron is a closed convex solid. Every edge is shared by exactly two
// faces. Built once by Generate and immutable afterwards.
type Polyhedron struct {
	Faces    []Face
	Vertices []mgl64.Vec3
	// Inradius is the distance from the center of the solid to the center
	// of a face.
	Inradius float64
}

type queuedEdge struct {
	edge      Edge
	faceIndex int
}

// Generate builds the regular polyhedron {p,q}: faces are p-sided polygons
// and q faces meet at every vertex. The edge length is 1.
//
// A base p-gon is placed on the z-axis at the inradius, then the solid is
// unfolded breadth-first: every edge that has only one face gets the
// neighbor face rotated about it by the dihedral angle, until every edge is
// complete.
func Generate(p, q int) (*Polyhedron, error) {
	if p < 3 || q < 3 || (p-2)*(q-2) >= 4 {
		return nil, ErrInvalidSchlafli
	}

	pf, qf := float64(p), float64(q)
	// Dihedral angle is the angle between adjacent faces.
	dihedralAngle := 2 * math.Asin(math.Cos(math.Pi/qf)/math.Sin(math.Pi/pf))
	const edgeLength = 1.0
	dihedralAngleCos := math.Cos(dihedralAngle)
	inradius := edgeLength / (2 * math.Tan(math.Pi/pf)) *
		math.Sqrt((1-dihedralAngleCos)/(1+dihedralAngleCos))

	angleBetweenVertices := 2 * math.Pi / pf
	// sin(theta/2) = (edgeLength / 2) / vertexToFaceCenter
	vertexToFaceCenter := (edgeLength / 2) / math.Sin(angleBetweenVertices/2)

	baseVertices := make([]mgl64.Vec3, p)
	for i := range p {
		r := NewRotation(mgl64.Vec3{0, 0, 1}, angleBetweenVertices*float64(i))
		baseVertices[i] = r.RotatePoint(mgl64.Vec3{vertexToFaceCenter, 0, inradius})
	}

	faces := []Face{{Vertices: baseVertices}}
	var vertices []mgl64.Vec3

	// Edges which have one associated face but not yet two.
	var incompleteEdges []queuedEdge
	for _, edge := range faces[0].Edges() {
		vertices = append(vertices, edge.A)
		incompleteEdges = append(incompleteEdges, queuedEdge{edge: edge, faceIndex: 0})
	}

	for len(incompleteEdges) > 0 {
		queued := incompleteEdges[0]
		incompleteEdges = incompleteEdges[1:]

		existingFace := faces[queued.faceIndex]
		rotationAxis := queued.edge.A.Sub(queued.edge.B).Normalize()
		newFace := existingFace.RotateAboutAxis(rotationAxis.Mul(dihedralAngle), queued.edge.A)

		// The new face may complete edges that are already queued. Those
		// are removed; the rest are queued for this face.
		newFaceIndex := len(faces)
		for _, edge := range newFace.Edges() {
			if edge.ApproxEqual(queued.edge) {
				continue
			}
			matched := -1
			for i, incomplete := range incompleteEdges {
				if edge.ApproxEqual(incomplete.edge) {
					matched = i
					break
				}
			}
			if matched >= 0 {
				incompleteEdges = append(incompleteEdges[:matched], incompleteEdges[matched+1:]...)
				continue
			}
			known := false
			for _, v := range vertices {
				if ApproxEqual(v, edge.A) {
					known = true
					break
				}
			}
			if !known {
				vertices = append(vertices, edge.A)
			}
			incompleteEdges = append(incompleteEdges, queuedEdge{edge: edge, faceIndex: newFaceIndex})
		}
		faces = append(faces, newFace)
	}

	// Closed-solid invariant: V - E + F = 2, with E = F*p/2 since every
	// edge is shared by exactly two p-gons.
	numEdges := len(faces) * p / 2
	if len(vertices)-numEdges+len(faces) != 2 {
		return nil, ErrOpenSolid
	}

	return &Polyhedron{
		Faces:    faces,
		Vertices: vertices,
		Inradius: inradius,
	}, nil
}

// FacePairs pairs every face with the unique face whose plane normal is
// anti-parallel to its own. Solids whose faces have no opposite (such as
// the tetrahedron) yield no pairs.
func (poly *Polyhedron) FacePairs() [][2]int {
	paired := make([]bool, len(poly.Faces))
	var pairs [][2]int
	for i, face := range poly.Faces {
		if paired[i] {
			continue
		}
		normal := face.Plane().Normal
		for j := i + 1; j < len(poly.Faces); j++ {
			if paired[j] {
				continue
			}
			cross := poly.Faces[j].Plane().Normal.Cross(normal)
			if cross.Len() < Epsilon {
				paired[i] = true
				paired[j] = true
				pairs = append(pairs, [2]int{i, j})
				break
			}
		}
	}
	return pairs
}
