package solver

import "github.com/akmonengine/prism"

// OneMoveSolver greedily applies whichever single turn most increases the
// number of solved pieces, stopping as soon as no turn improves on the
// current state. It only solves scrambles a single turn away but is cheap
// enough to try first.
type OneMoveSolver struct {
	puzzle *prism.Puzzle
	state  prism.PuzzleState
}

func NewOneMoveSolver(p *prism.Puzzle, initial prism.PuzzleState) *OneMoveSolver {
	return &OneMoveSolver{puzzle: p, state: initial.Clone()}
}

func (s *OneMoveSolver) State() prism.PuzzleState {
	return s.state
}

func (s *OneMoveSolver) Next() (int, bool) {
	bestScore := s.puzzle.GetNumSolvedPieces(s.state)
	bestTurn := -1
	for turnIndex := range s.puzzle.Turns {
		derived := s.puzzle.GetDerivedStateTurnIndex(s.state, turnIndex)
		if score := s.puzzle.GetNumSolvedPieces(derived); score > bestScore {
			bestScore = score
			bestTurn = turnIndex
		}
	}
	if bestTurn < 0 {
		return 0, false
	}

	s.state = s.puzzle.GetDerivedStateTurnIndex(s.state, bestTurn)

	return bestTurn, true
}
