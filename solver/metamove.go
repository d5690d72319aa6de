package solver

import (
	"slices"

	"github.com/akmonengine/prism"
	"github.com/akmonengine/prism/perm"
)

// MetaMove is a turn sequence together with its net effect on the puzzle.
// The face map composes the face maps of the turns in application order,
// so applying the sequence turn by turn and applying FaceMap to the face
// indices are equivalent.
type MetaMove struct {
	Turns             []int
	FaceMap           perm.Bijection
	NumAffectedPieces int
}

// NewMetaMove builds a metamove from a turn sequence and its known face
// map. NumAffectedPieces is recomputed from the face map.
func NewMetaMove(p *prism.Puzzle, turns []int, faceMap perm.Bijection) MetaMove {
	derived := p.GetDerivedState(p.GetInitialState(), faceMap)

	return MetaMove{
		Turns:             turns,
		FaceMap:           faceMap,
		NumAffectedPieces: p.GetNumPieces() - p.GetNumSolvedPieces(derived),
	}
}

// NewMetaMoveFromTurns builds a metamove from a turn sequence alone,
// composing the face maps of the named turns.
func NewMetaMoveFromTurns(p *prism.Puzzle, turns []int) MetaMove {
	faceMap := perm.Identity(p.GetNumFaces())
	for _, turnIndex := range turns {
		faceMap = faceMap.Apply(p.Turns[turnIndex].FaceMap)
	}

	return NewMetaMove(p, slices.Clone(turns), faceMap)
}

// EmptyMetaMove returns the metamove with no turns and the identity face map.
func EmptyMetaMove(p *prism.Puzzle) MetaMove {
	return MetaMove{
		Turns:   nil,
		FaceMap: perm.Identity(p.GetNumFaces()),
	}
}

// Apply concatenates other after m and composes their face maps.
func (m MetaMove) Apply(p *prism.Puzzle, other MetaMove) MetaMove {
	turns := make([]int, 0, len(m.Turns)+len(other.Turns))
	turns = append(turns, m.Turns...)
	turns = append(turns, other.Turns...)

	return NewMetaMove(p, turns, m.FaceMap.Apply(other.FaceMap))
}

// Invert returns the metamove undoing m: the reversed sequence of inverted
// turns, carrying the inverted face map.
func (m MetaMove) Invert(p *prism.Puzzle) MetaMove {
	turns := make([]int, len(m.Turns))
	for i, turnIndex := range m.Turns {
		turns[len(turns)-1-i] = p.InvertedTurnIndex(turnIndex)
	}

	return MetaMove{
		Turns:             turns,
		FaceMap:           m.FaceMap.Invert(),
		NumAffectedPieces: m.NumAffectedPieces,
	}
}

// Cycles exposes the cycle decomposition of the metamove's face map.
func (m MetaMove) Cycles() [][]int {
	return m.FaceMap.Cycles()
}

// applySymmetry transports m through a puzzle symmetry: each turn is
// replaced by its image under the symmetry's turn map, giving a distinct
// sequence with a conjugated face map.
func (m MetaMove) applySymmetry(p *prism.Puzzle, sym prism.Symmetry) MetaMove {
	turns := make([]int, len(m.Turns))
	for i, turnIndex := range m.Turns {
		turns[i] = sym.TurnMap[turnIndex]
	}

	return NewMetaMoveFromTurns(p, turns)
}

// Compare orders metamoves by usefulness for solving: fewest affected
// pieces first, then shortest sequence, then lexicographically smallest
// sequence. The last component makes the ordering total over distinct
// sequences, which keeps discovery output deterministic.
func (m MetaMove) Compare(other MetaMove) int {
	if c := m.NumAffectedPieces - other.NumAffectedPieces; c != 0 {
		return c
	}
	if c := len(m.Turns) - len(other.Turns); c != 0 {
		return c
	}

	return slices.Compare(m.Turns, other.Turns)
}
