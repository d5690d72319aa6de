package solver

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmonengine/prism"
)

// assertConsistent checks the collected turns replay exactly into the
// solver's final state.
func assertConsistent(t *testing.T, p *prism.Puzzle, scrambled prism.PuzzleState, s ScrambleSolver) []int {
	t.Helper()
	turns := Collect(s)
	replayed := p.GetDerivedStateFromTurns(scrambled, turns)
	require.True(t, replayed.Equal(s.State()), "collected turns do not replay into the solver state")
	return turns
}

func TestOneMoveSolver(t *testing.T) {
	p := pyraminx(t)

	scrambled := p.GetDerivedStateTurnIndex(p.GetInitialState(), 0)
	s := NewOneMoveSolver(p, scrambled)
	turns := assertConsistent(t, p, scrambled, s)

	assert.Equal(t, []int{1}, turns)
	assert.True(t, s.State().Equal(p.GetInitialState()))
}

func TestOneMoveSolverStopsWhenStuck(t *testing.T) {
	p := pyraminx(t)

	// A deep scramble has no single improving turn reachable forever;
	// the solver must terminate regardless.
	scrambled := p.Scramble(p.GetInitialState(), 30, rand.New(rand.NewPCG(7, 7)))
	s := NewOneMoveSolver(p, scrambled)
	assertConsistent(t, p, scrambled, s)
	assert.GreaterOrEqual(t,
		p.GetNumSolvedPieces(s.State()),
		p.GetNumSolvedPieces(scrambled),
		"greedy solving never loses solved pieces")
}

func TestOneMoveSolverSolvedState(t *testing.T) {
	p := pyraminx(t)

	s := NewOneMoveSolver(p, p.GetInitialState())
	assert.Empty(t, Collect(s))
}

func TestFullSearchSolver(t *testing.T) {
	p := pyraminx(t)

	scrambled := p.GetDerivedStateFromTurns(p.GetInitialState(), []int{0, 2, 4})
	s := NewFullSearchSolver(p, scrambled, FullSearchOpts{Depth: 4})
	turns := assertConsistent(t, p, scrambled, s)

	assert.True(t, s.State().Equal(p.GetInitialState()), "search within depth must solve")
	assert.LessOrEqual(t, len(turns), 3, "the three-turn inverse bounds the solution length")
}

func TestFullSearchSolverSolvedState(t *testing.T) {
	p := pyraminx(t)

	s := NewFullSearchSolver(p, p.GetInitialState(), FullSearchOpts{Depth: 3})
	assert.Empty(t, Collect(s))
}

func TestLookaheadSolver(t *testing.T) {
	p := pyraminx(t)

	scrambled := p.GetDerivedStateFromTurns(p.GetInitialState(), []int{0, 2})
	s := NewLookaheadSolver(p, scrambled, LookaheadOpts{Depth: 2})
	turns := assertConsistent(t, p, scrambled, s)

	assert.True(t, s.State().Equal(p.GetInitialState()))
	assert.NotEmpty(t, turns)
}

func TestLookaheadSolverSolvedState(t *testing.T) {
	p := pyraminx(t)

	s := NewLookaheadSolver(p, p.GetInitialState(), LookaheadOpts{})
	assert.Empty(t, Collect(s))
}

func TestMetaMoveSolver(t *testing.T) {
	p := pyraminx(t)

	scrambled := p.GetDerivedStateFromTurns(p.GetInitialState(), []int{0, 2, 1})
	s, err := NewMetaMoveSolver(p, scrambled, MetaMoveOpts{})
	require.NoError(t, err)

	assertConsistent(t, p, scrambled, s)
	assert.GreaterOrEqual(t,
		p.GetNumSolvedPieces(s.State()),
		p.GetNumSolvedPieces(scrambled),
		"every accepted chain strictly improves")
}

func TestMetaMovePhasedSolver(t *testing.T) {
	p := pyraminx(t)

	s, err := NewMetaMovePhasedSolver(p, p.GetInitialState(), PhasedOpts{})
	require.NoError(t, err)

	// Already solved: every phase reports completion without a move.
	assert.Empty(t, Collect(s))
	assert.True(t, s.State().Equal(p.GetInitialState()))
}

func TestMetaMovePhasedSolverSolvesScrambles(t *testing.T) {
	p := pyraminx(t)

	for seed := uint64(1); seed <= 3; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			scrambled := p.Scramble(p.GetInitialState(), 20, rand.New(rand.NewPCG(seed, 0)))
			s, err := NewMetaMovePhasedSolver(p, scrambled, PhasedOpts{})
			require.NoError(t, err)

			turns := assertConsistent(t, p, scrambled, s)
			require.True(t, s.State().Equal(p.GetInitialState()),
				"solution of %d turns left pieces unsolved", len(turns))
		})
	}
}

func TestMetaMovePhasedSolverTwistedPiece(t *testing.T) {
	p := pyraminx(t)

	// Repeating one turn leaves its vertex piece twisted in its own
	// slot, a state no cycle of whole pieces can improve.
	scrambled := p.GetDerivedStateFromTurns(p.GetInitialState(), []int{0, 0})
	s, err := NewMetaMovePhasedSolver(p, scrambled, PhasedOpts{})
	require.NoError(t, err)

	assertConsistent(t, p, scrambled, s)
	assert.True(t, s.State().Equal(p.GetInitialState()))
}

func TestEvalSolver(t *testing.T) {
	p := pyraminx(t)

	// Counting solved pieces as the evaluator reduces to greedy solving.
	evaluate := func(state prism.PuzzleState) float64 {
		return float64(p.GetNumSolvedPieces(state))
	}

	scrambled := p.GetDerivedStateTurnIndex(p.GetInitialState(), 2)
	s := NewEvalSolver(p, scrambled, evaluate)
	turns := assertConsistent(t, p, scrambled, s)

	assert.Equal(t, []int{3}, turns)
	assert.True(t, s.State().Equal(p.GetInitialState()))
}

func TestEvalSolverSolvedState(t *testing.T) {
	p := pyraminx(t)

	s := NewEvalSolver(p, p.GetInitialState(), func(prism.PuzzleState) float64 { return 0 })
	assert.Empty(t, Collect(s))
}
