// Package solver implements move-sequence search over twisty puzzles:
// metamove discovery and a set of solving strategies that consume a puzzle
// and a scrambled state and emit turn indices reaching the solved state.
package solver

import (
	"errors"

	"github.com/akmonengine/prism"
)

var (
	// ErrNoMetaMoves indicates metamove discovery found no usable
	// metamoves for the configured depth and filter; metamove-based
	// solving cannot proceed without a basis.
	ErrNoMetaMoves = errors.New("solver: no metamoves discovered")
	// ErrNoThreeCycle indicates no phase could derive a cycle or twist
	// metamove for its piece type, leaving phased solving without tools.
	ErrNoThreeCycle = errors.New("solver: no three-cycle found for piece type")
)

// ScrambleSolver is a pull-based solving iterator. Every Next call both
// advances the internal state by one turn and returns the turn applied;
// the iteration ends when the state is solved or no further improving move
// exists.
//
// Callers driving an animation loop call Next once per tick; Collect runs
// a solver to completion.
type ScrambleSolver interface {
	Next() (turnIndex int, ok bool)
	// State returns the solver's current puzzle state.
	State() prism.PuzzleState
}

// Collect drains a solver and returns the full turn sequence it produced.
func Collect(s ScrambleSolver) []int {
	var turns []int
	for {
		turn, ok := s.Next()
		if !ok {
			return turns
		}
		turns = append(turns, turn)
	}
}

// Evaluator scores a state; higher is closer to solved. It is the
// interface consumed from external scoring collaborators (such as a
// trained network): a total, deterministic function of the state.
type Evaluator func(state prism.PuzzleState) float64
