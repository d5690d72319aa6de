package solver

import "github.com/akmonengine/prism"

// FullSearchOpts configures a FullSearchSolver.
type FullSearchOpts struct {
	// Depth bounds the length of the solution searched for.
	Depth int
}

// FullSearchSolver exhaustively searches every turn sequence up to the
// configured depth at construction time and then replays the best solution
// found. Once a fully solved state is reached during the search, the depth
// bound shrinks to that solution's length, so only shorter solutions are
// considered afterwards.
//
// The search visits len(Turns)^Depth states, so it is only practical for
// small puzzles or shallow scrambles.
type FullSearchSolver struct {
	puzzle   *prism.Puzzle
	state    prism.PuzzleState
	solution []int
}

func NewFullSearchSolver(p *prism.Puzzle, initial prism.PuzzleState, opts FullSearchOpts) *FullSearchSolver {
	s := &FullSearchSolver{
		puzzle: p,
		state:  initial.Clone(),
	}

	type searchNode struct {
		state     prism.PuzzleState
		turnIndex int
	}
	type bestSolution struct {
		numMoves int
		score    int
		turns    []int
	}

	best := bestSolution{score: p.GetNumSolvedPieces(initial)}
	if best.score == p.GetNumPieces() {
		return s
	}

	maxStackSize := opts.Depth + 1
	stack := []searchNode{{state: initial, turnIndex: 0}}
	for len(stack) > 0 {
		if len(stack) < maxStackSize {
			top := stack[len(stack)-1]
			derived := p.GetDerivedStateTurnIndex(top.state, top.turnIndex)
			score := p.GetNumSolvedPieces(derived)
			numMoves := len(stack)
			if score > best.score || (score == best.score && numMoves < best.numMoves) {
				turns := make([]int, len(stack))
				for i, node := range stack {
					turns[i] = node.turnIndex
				}
				best = bestSolution{numMoves: numMoves, score: score, turns: turns}
			}
			if score == p.GetNumPieces() {
				maxStackSize = len(stack)
			}
			stack = append(stack, searchNode{state: derived, turnIndex: 0})
		} else {
			for len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.turnIndex < len(p.Turns)-1 {
					top.turnIndex++
					break
				}
				stack = stack[:len(stack)-1]
			}
		}
	}

	s.solution = best.turns

	return s
}

func (s *FullSearchSolver) State() prism.PuzzleState {
	return s.state
}

func (s *FullSearchSolver) Next() (int, bool) {
	if len(s.solution) == 0 {
		return 0, false
	}
	turnIndex := s.solution[0]
	s.solution = s.solution[1:]
	s.state = s.puzzle.GetDerivedStateTurnIndex(s.state, turnIndex)

	return turnIndex, true
}
