package prism

import (
	"math"

	"github.com/akmonengine/prism/geom"
)

// Standard puzzle constructors. Each builds its polyhedron and cut layout
// from scratch; puzzles are independent values.

const tau = 2 * math.Pi

var rubiksCubeCutNames = [6]string{"U", "F", "R", "B", "L", "D"}

// faceCuts cuts the polyhedron parallel to each of the given faces, at the
// given plane offset (negative moves the cut below the face, into the
// solid).
func faceCuts(faces []geom.Face, offset, rotationAngle float64, names []string) []CutDefinition {
	cuts := make([]CutDefinition, len(faces))
	for i, face := range faces {
		name := ""
		if names != nil {
			name = names[i]
		}
		cuts[i] = CutDefinition{
			Name:          name,
			Plane:         face.Plane().Offset(offset),
			RotationAngle: rotationAngle,
		}
	}
	return cuts
}

// vertexCuts cuts the polyhedron below each of its vertices: the cut plane
// is normal to the vertex direction, offset towards the center.
func vertexCuts(poly *geom.Polyhedron, offset, rotationAngle float64) []CutDefinition {
	cuts := make([]CutDefinition, len(poly.Vertices))
	for i, vertex := range poly.Vertices {
		plane := geom.Plane{Point: vertex, Normal: vertex}
		cuts[i] = CutDefinition{Plane: plane.Offset(offset), RotationAngle: rotationAngle}
	}
	return cuts
}

// Pyraminx is the tetrahedron cut below each of its four vertices, turning
// by a third of a full turn.
func Pyraminx() (*Puzzle, error) {
	tetrahedron, err := geom.Generate(3, 3)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(tetrahedron, vertexCuts(tetrahedron, -0.53, tau/3))
}

// RubiksCube3x3 is the cube cut below each of its six faces.
func RubiksCube3x3() (*Puzzle, error) {
	cube, err := geom.Generate(4, 3)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(cube, faceCuts(cube.Faces, -0.33, tau/4, rubiksCubeCutNames[:]))
}

// RubiksCube2x2 is the cube cut through its middle along three axes.
func RubiksCube2x2() (*Puzzle, error) {
	cube, err := geom.Generate(4, 3)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(cube, faceCuts(cube.Faces[:3], -0.5, tau/4, rubiksCubeCutNames[:3]))
}

// Megaminx is the dodecahedron cut below each of its twelve faces.
func Megaminx() (*Puzzle, error) {
	dodecahedron, err := geom.Generate(5, 3)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(dodecahedron, faceCuts(dodecahedron.Faces, -0.33, tau/5, nil))
}

// Starminx cuts the dodecahedron deeper than the megaminx, past the
// center of each face's neighbors.
func Starminx() (*Puzzle, error) {
	dodecahedron, err := geom.Generate(5, 3)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(dodecahedron, faceCuts(dodecahedron.Faces, -0.75, tau/5, nil))
}

// EitansStar is the icosahedron cut below each of its twenty faces.
func EitansStar() (*Puzzle, error) {
	icosahedron, err := geom.Generate(3, 5)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(icosahedron, faceCuts(icosahedron.Faces, -0.29, tau/3, nil))
}

// CompyCube is the cube cut shallowly below each of its eight vertices.
func CompyCube() (*Puzzle, error) {
	cube, err := geom.Generate(4, 3)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(cube, vertexCuts(cube, -0.45, tau/3))
}

// Pentultimate is the dodecahedron cut just below each vertex.
func Pentultimate() (*Puzzle, error) {
	dodecahedron, err := geom.Generate(5, 3)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(dodecahedron, vertexCuts(dodecahedron, -0.1, tau/3))
}

// DinoStarminx is the dodecahedron cut below each vertex, deeper than the
// pentultimate.
func DinoStarminx() (*Puzzle, error) {
	dodecahedron, err := geom.Generate(5, 3)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(dodecahedron, vertexCuts(dodecahedron, -0.3, tau/3))
}

// SkewbDiamond is the octahedron cut through its middle below four of its
// eight faces.
func SkewbDiamond() (*Puzzle, error) {
	octahedron, err := geom.Generate(3, 4)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(octahedron, faceCuts(octahedron.Faces[:4], -0.41, tau/3, nil))
}
