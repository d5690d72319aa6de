package prism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetryCounts(t *testing.T) {
	tests := []struct {
		name          string
		build         func() (*Puzzle, error)
		numSymmetries int
	}{
		// Full symmetry groups including reflections.
		{"pyraminx", Pyraminx, 24},
		{"3x3", RubiksCube3x3, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.build()
			require.NoError(t, err)
			assert.Len(t, p.Symmetries(), tt.numSymmetries)
		})
	}
}

func TestSymmetriesIncludeIdentity(t *testing.T) {
	p, err := Pyraminx()
	require.NoError(t, err)

	found := false
	for _, sym := range p.Symmetries() {
		if sym.FaceMap.IsIdentity() {
			require.True(t, sym.TurnMap.IsIdentity(), "identity face map must carry the identity turn map")
			found = true
		}
	}
	assert.True(t, found, "the identity symmetry should always be discovered")
}

func TestSymmetryTurnMapsAreBijections(t *testing.T) {
	p, err := RubiksCube3x3()
	require.NoError(t, err)

	for i, sym := range p.Symmetries() {
		require.Len(t, sym.TurnMap, len(p.Turns), "symmetry %d", i)
		seen := make([]bool, len(p.Turns))
		for _, turnIndex := range sym.TurnMap {
			require.False(t, seen[turnIndex], "symmetry %d maps two turns to %d", i, turnIndex)
			seen[turnIndex] = true
		}
	}
}

func TestSymmetryConjugation(t *testing.T) {
	// A symmetry maps each turn to the turn whose face map is the
	// original's conjugated through the symmetry. Applying a turn and
	// then the symmetry must equal applying the symmetry and then the
	// mapped turn.
	p, err := Pyraminx()
	require.NoError(t, err)

	for i, sym := range p.Symmetries() {
		for turnIndex, turn := range p.Turns {
			mapped := p.Turns[sym.TurnMap[turnIndex]]
			left := mapped.FaceMap.Apply(sym.FaceMap)
			right := sym.FaceMap.Apply(turn.FaceMap)
			assert.True(t, left.Equal(right), "symmetry %d, turn %d", i, turnIndex)
		}
	}
}

func TestSymmetryFaceMapsAreDistinct(t *testing.T) {
	p, err := RubiksCube3x3()
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, sym := range p.Symmetries() {
		key := sym.FaceMap.Key()
		assert.False(t, seen[key], "duplicate symmetry face map")
		seen[key] = true
	}
}
