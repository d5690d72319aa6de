package solver

import (
	"math"

	"github.com/akmonengine/prism"
)

// EvalSolver greedily follows an external Evaluator, applying whichever
// single turn scores highest and stopping when no turn scores above the
// current state. A turn reaching the solved state is always taken.
type EvalSolver struct {
	puzzle   *prism.Puzzle
	state    prism.PuzzleState
	evaluate Evaluator
}

func NewEvalSolver(p *prism.Puzzle, initial prism.PuzzleState, evaluate Evaluator) *EvalSolver {
	return &EvalSolver{puzzle: p, state: initial.Clone(), evaluate: evaluate}
}

func (s *EvalSolver) State() prism.PuzzleState {
	return s.state
}

func (s *EvalSolver) Next() (int, bool) {
	solved := s.puzzle.GetInitialState()
	if s.state.Equal(solved) {
		return 0, false
	}

	currentScore := s.evaluate(s.state)
	bestScore := math.Inf(-1)
	bestTurn := 0
	for turnIndex := range s.puzzle.Turns {
		next := s.puzzle.GetDerivedStateTurnIndex(s.state, turnIndex)
		score := math.Inf(1)
		if !next.Equal(solved) {
			score = s.evaluate(next)
		}
		if score > bestScore {
			bestScore = score
			bestTurn = turnIndex
		}
	}
	if currentScore >= bestScore {
		return 0, false
	}

	s.state = s.puzzle.GetDerivedStateTurnIndex(s.state, bestTurn)

	return bestTurn, true
}
