// Package prism builds arbitrary twisty puzzles from a polyhedron and a
// set of cutting planes, represents puzzle state as a permutation of
// colored facets, and discovers the puzzle's symmetry group.
//
// A Puzzle is built once by NewPuzzle and is read-only afterwards; states
// are cheap value slices derived from one another, never mutated in place.
package prism

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/prism/geom"
	"github.com/akmonengine/prism/perm"
)

// CutPlaneThickness is the offset applied on both sides of a cut plane
// while slicing, so an edge lying exactly on the plane never produces a
// zero-width piece.
const CutPlaneThickness = 0.005

// CutDefinition is one layer of the puzzle: turning the layer rotates all
// matter above the plane by RotationAngle around the plane's normal at the
// plane's point.
type CutDefinition struct {
	// Name of the cut; empty names are inferred (A, B, C, ...).
	Name          string
	Plane         geom.Plane
	RotationAngle float64
}

// PieceFace is one colored facet of the puzzle. ColorIndex identifies the
// physical sticker and indexes into the original uncut face list; it is
// fixed at construction.
type PieceFace struct {
	Face       geom.Face
	ColorIndex int
	// AffectingTurnIndices lists the turns that physically move this face.
	AffectingTurnIndices []int
}

func (f PieceFace) affectedBy(turnIndex int) bool {
	return slices.Contains(f.AffectingTurnIndices, turnIndex)
}

// Turn is one atomic layer rotation. Turns come in adjacent
// forward/inverse pairs: even index forward, odd index inverse.
type Turn struct {
	Name string
	// FaceMap is the turn's permutation in pull form: a derived state
	// reads its color for face i from FaceMap[i] of the previous state.
	FaceMap perm.Bijection
	// RotationAxis direction is the turn's physical rotation axis and its
	// magnitude the rotation angle; RotationAxisPoint is the pivot.
	RotationAxis      mgl64.Vec3
	RotationAxisPoint mgl64.Vec3
}

// PuzzleState holds the color shown at every face slot.
type PuzzleState []int

// Equal reports whether two states show the same colors everywhere.
func (s PuzzleState) Equal(other PuzzleState) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy of the state.
func (s PuzzleState) Clone() PuzzleState {
	return slices.Clone(s)
}

// Puzzle is a twisty puzzle: faces, rigid pieces, turns and symmetries.
// Built once by NewPuzzle, immutable afterwards.
type Puzzle struct {
	Faces []PieceFace
	Turns []Turn

	// pieces lists the face indices of each rigid piece.
	pieces     [][]int
	pieceTypes []PieceType
	symmetries []Symmetry
}

// NewPuzzle slices the polyhedron's faces with every cut in order, groups
// the resulting facets into rigid pieces, derives each turn's face map and
// discovers the puzzle's symmetry group.
func NewPuzzle(poly *geom.Polyhedron, cuts []CutDefinition) (*Puzzle, error) {
	if len(cuts) == 0 {
		return nil, ErrNoCuts
	}

	faces := make([]PieceFace, len(poly.Faces))
	for colorIndex, face := range poly.Faces {
		faces[colorIndex] = PieceFace{Face: face, ColorIndex: colorIndex}
	}

	var turns []Turn
	inferredName := byte('A')
	for _, cut := range cuts {
		name := cut.Name
		if name == "" {
			name = string(inferredName)
			inferredName++
		}
		rotationAxis := cut.Plane.Normal.Normalize().Mul(-cut.RotationAngle)
		forwardIndex := len(turns)
		inverseIndex := forwardIndex + 1
		turns = append(turns,
			Turn{
				Name:              name,
				RotationAxis:      rotationAxis,
				RotationAxisPoint: cut.Plane.Point,
			},
			Turn{
				Name:              name + "'",
				RotationAxis:      rotationAxis.Mul(-1),
				RotationAxisPoint: cut.Plane.Point,
			},
		)

		faces = sliceFaces(faces, cut, forwardIndex, inverseIndex)
	}

	pieces := groupPieces(faces)

	faceCenters := make([]mgl64.Vec3, len(faces))
	centerIndex := geom.NewPointMap[int]()
	for i, face := range faces {
		faceCenters[i] = face.Face.Center()
		centerIndex.Insert(faceCenters[i], i)
	}

	// Try out each turn to determine which face ends up where.
	for turnIndex := range turns {
		t := &turns[turnIndex]
		rotation := geom.RotationVector(t.RotationAxis)
		pushed := make(perm.Bijection, len(faces))
		for i, face := range faces {
			if !face.affectedBy(turnIndex) {
				// This turn does not affect this face; it stays put.
				pushed[i] = i
				continue
			}
			newLocation := rotation.RotateAboutPoint(faceCenters[i], t.RotationAxisPoint)
			target, ok := centerIndex.Get(newLocation)
			if !ok {
				return nil, fmt.Errorf("%w (turn %s, face %d)", ErrFaceLookup, t.Name, i)
			}
			pushed[i] = target
		}
		t.FaceMap = pushed.Invert()
	}

	p := &Puzzle{
		Faces:      faces,
		Turns:      turns,
		pieces:     pieces,
		pieceTypes: groupPieceTypes(faces, pieces),
	}
	p.symmetries = discoverSymmetries(p, poly, centerIndex)
	return p, nil
}

// sliceFaces splits every face against one cut plane. Facets above the
// plane gain the cut's two turn indices; facets below keep theirs.
func sliceFaces(faces []PieceFace, cut CutDefinition, forwardIndex, inverseIndex int) []PieceFace {
	cutPlaneOuter := cut.Plane.Offset(CutPlaneThickness)
	cutPlaneInner := cut.Plane.Offset(-CutPlaneThickness)

	updated := make([]PieceFace, 0, len(faces))
	for _, face := range faces {
		var above, below vertexList

		vertices := face.Face.Vertices
		prev := vertices[0]
		prevAbove := isAboveCutPlane(prev, cut.Plane)
		for i := 1; i <= len(vertices); i++ {
			// The first vertex appears again at the end so every edge is
			// walked, wrapping around.
			next := vertices[i%len(vertices)]
			nextAbove := isAboveCutPlane(next, cut.Plane)

			switch {
			case prevAbove && nextAbove:
				above.push(prev)
			case !prevAbove && !nextAbove:
				below.push(prev)
			default:
				// This edge crosses the plane.
				if prevAbove {
					above.push(prev)
				} else {
					below.push(prev)
				}
				edgeRay := geom.Ray{Point: prev, Direction: prev.Sub(next)}
				above.push(cutPlaneOuter.Intersection(edgeRay))
				below.push(cutPlaneInner.Intersection(edgeRay))
			}

			prev = next
			prevAbove = nextAbove
		}

		if verticesAbove := above.finish(); len(verticesAbove) > 2 {
			affecting := make([]int, 0, len(face.AffectingTurnIndices)+2)
			affecting = append(affecting, face.AffectingTurnIndices...)
			affecting = append(affecting, forwardIndex, inverseIndex)
			updated = append(updated, PieceFace{
				Face:                 geom.Face{Vertices: verticesAbove},
				ColorIndex:           face.ColorIndex,
				AffectingTurnIndices: affecting,
			})
		}
		if verticesBelow := below.finish(); len(verticesBelow) > 2 {
			updated = append(updated, PieceFace{
				Face:                 geom.Face{Vertices: verticesBelow},
				ColorIndex:           face.ColorIndex,
				AffectingTurnIndices: face.AffectingTurnIndices,
			})
		}
	}
	return updated
}

func isAboveCutPlane(vertex mgl64.Vec3, plane geom.Plane) bool {
	return vertex.Sub(plane.Point).Dot(plane.Normal) > 0
}

// groupPieces groups face indices by identical affecting-turn sets: faces
// moved by exactly the same turns are rigidly attached.
func groupPieces(faces []PieceFace) [][]int {
	byTurnSet := make(map[string][]int)
	var keys []string
	for faceIndex, face := range faces {
		sorted := slices.Clone(face.AffectingTurnIndices)
		slices.Sort(sorted)
		key := fmt.Sprint(sorted)
		if _, seen := byTurnSet[key]; !seen {
			keys = append(keys, key)
		}
		byTurnSet[key] = append(byTurnSet[key], faceIndex)
	}
	pieces := make([][]int, len(keys))
	for i, key := range keys {
		pieces[i] = byTurnSet[key]
	}
	return pieces
}

// vertexList accumulates polygon vertices, dropping adjacent duplicates
// (approximately equal positions) and a duplicated first/last vertex.
type vertexList struct {
	vertices []mgl64.Vec3
}

func (l *vertexList) push(vertex mgl64.Vec3) {
	if n := len(l.vertices); n > 0 && geom.ApproxEqual(l.vertices[n-1], vertex) {
		return
	}
	l.vertices = append(l.vertices, vertex)
}

func (l *vertexList) finish() []mgl64.Vec3 {
	n := len(l.vertices)
	if n > 1 && geom.ApproxEqual(l.vertices[0], l.vertices[n-1]) {
		return l.vertices[:n-1]
	}
	return l.vertices
}

// GetNumFaces returns the number of face slots.
func (p *Puzzle) GetNumFaces() int {
	return len(p.Faces)
}

// GetNumPieces returns the number of rigid pieces.
func (p *Puzzle) GetNumPieces() int {
	return len(p.pieces)
}

// GetInitialState returns the solved state: every face shows its own
// color.
func (p *Puzzle) GetInitialState() PuzzleState {
	state := make(PuzzleState, len(p.Faces))
	for i, face := range p.Faces {
		state[i] = face.ColorIndex
	}
	return state
}

// GetNumSolvedPieces counts the pieces whose faces all show their original
// color.
func (p *Puzzle) GetNumSolvedPieces(state PuzzleState) int {
	solved := 0
	for _, piece := range p.pieces {
		allSolved := true
		for _, faceIndex := range piece {
			if state[faceIndex] != p.Faces[faceIndex].ColorIndex {
				allSolved = false
				break
			}
		}
		if allSolved {
			solved++
		}
	}
	return solved
}

// GetDerivedState applies a face map to a state, pulling the color for
// each slot i from faceMap[i] of the previous state.
func (p *Puzzle) GetDerivedState(previous PuzzleState, faceMap perm.Bijection) PuzzleState {
	state := make(PuzzleState, len(faceMap))
	for i, oldIndex := range faceMap {
		state[i] = previous[oldIndex]
	}
	return state
}

// GetDerivedStateTurnIndex applies one turn to a state.
func (p *Puzzle) GetDerivedStateTurnIndex(previous PuzzleState, turnIndex int) PuzzleState {
	return p.GetDerivedState(previous, p.Turns[turnIndex].FaceMap)
}

// GetDerivedStateFromTurns applies a sequence of turns to a state.
func (p *Puzzle) GetDerivedStateFromTurns(previous PuzzleState, turns []int) PuzzleState {
	state := previous
	for _, turnIndex := range turns {
		state = p.GetDerivedStateTurnIndex(state, turnIndex)
	}
	return state
}

// InvertedTurnIndex returns the index of a turn's inverse. Turns are
// stored in adjacent forward/inverse pairs, so this toggles the low bit.
func (p *Puzzle) InvertedTurnIndex(turnIndex int) int {
	return turnIndex ^ 1
}

// FacesForState returns the puzzle's faces recolored by the given state.
func (p *Puzzle) FacesForState(state PuzzleState) []PieceFace {
	faces := make([]PieceFace, len(p.Faces))
	for i, face := range p.Faces {
		face.ColorIndex = state[i]
		faces[i] = face
	}
	return faces
}

// GetPhysicallyTurnedFaces returns the faces recolored by the state, with
// the faces moved by the turn rotated partway through it. The interpolate
// amount runs from 0 (not turned) to 1 (fully turned); renderers animate a
// turn by sweeping it.
func (p *Puzzle) GetPhysicallyTurnedFaces(turnIndex int, state PuzzleState, interpolateAmount float64) []PieceFace {
	t := p.Turns[turnIndex]
	faces := make([]PieceFace, len(p.Faces))
	for i, face := range p.Faces {
		if face.affectedBy(turnIndex) {
			face.Face = face.Face.RotateAboutAxis(
				t.RotationAxis.Mul(interpolateAmount),
				t.RotationAxisPoint,
			)
		}
		face.ColorIndex = state[i]
		faces[i] = face
	}
	return faces
}

// Scramble applies the given number of uniformly random turns to a state.
func (p *Puzzle) Scramble(state PuzzleState, numRandomTurns int, rng *rand.Rand) PuzzleState {
	scrambled := state
	for range numRandomTurns {
		scrambled = p.GetDerivedStateTurnIndex(scrambled, rng.IntN(len(p.Turns)))
	}
	return scrambled
}
