package solver

import (
	"math/rand/v2"

	"github.com/akmonengine/prism"
)

// LookaheadOpts configures a LookaheadSolver.
type LookaheadOpts struct {
	// Depth is how many turns ahead each Next call searches. Values above
	// 3 are slow on large puzzles.
	Depth int
	// Rand provides the fallback random turn when the search plateaus.
	// Deterministic when seeded by the caller; defaults to a fixed seed.
	Rand *rand.Rand
}

// LookaheadSolver searches all turn sequences up to Depth long from the
// current state per move, applying the first turn of the best sequence
// found. When every sequence of that length scores no better than standing
// still, it searches one turn deeper, and failing that applies a random
// turn to escape the plateau.
type LookaheadSolver struct {
	puzzle *prism.Puzzle
	state  prism.PuzzleState
	depth  int
	rng    *rand.Rand
}

func NewLookaheadSolver(p *prism.Puzzle, initial prism.PuzzleState, opts LookaheadOpts) *LookaheadSolver {
	if opts.Depth <= 0 {
		opts.Depth = 2
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(0, 0))
	}

	return &LookaheadSolver{
		puzzle: p,
		state:  initial.Clone(),
		depth:  opts.Depth,
		rng:    opts.Rand,
	}
}

func (s *LookaheadSolver) State() prism.PuzzleState {
	return s.state
}

type lookaheadNode struct {
	state          prism.PuzzleState
	score          int
	initialTurn    int
	mostRecentTurn int
}

const noTurn = -1

func (s *LookaheadSolver) Next() (int, bool) {
	turnIndex, ok := s.nextTurn()
	if !ok {
		return 0, false
	}
	s.state = s.puzzle.GetDerivedStateTurnIndex(s.state, turnIndex)

	return turnIndex, true
}

func (s *LookaheadSolver) nextTurn() (int, bool) {
	initial := lookaheadNode{
		state:          s.state,
		score:          s.puzzle.GetNumSolvedPieces(s.state),
		initialTurn:    noTurn,
		mostRecentTurn: noTurn,
	}
	solvedScore := s.puzzle.GetNumPieces()
	if initial.score == solvedScore {
		return 0, false
	}

	fringe := []lookaheadNode{initial}
	best := initial

	// Breadth-first over turn sequences; an extra level is searched when
	// no improvement shows up within the configured depth.
	for i := 0; i < s.depth || (best.initialTurn == noTurn && i < s.depth+1); i++ {
		newFringe := make([]lookaheadNode, 0, len(fringe)*len(s.puzzle.Turns))
		for _, node := range fringe {
			for turnIndex := range s.puzzle.Turns {
				if node.mostRecentTurn != noTurn && turnIndex == s.puzzle.InvertedTurnIndex(node.mostRecentTurn) {
					continue
				}
				next := lookaheadNode{
					state:          s.puzzle.GetDerivedStateTurnIndex(node.state, turnIndex),
					initialTurn:    node.initialTurn,
					mostRecentTurn: turnIndex,
				}
				if next.initialTurn == noTurn {
					next.initialTurn = turnIndex
				}
				next.score = s.puzzle.GetNumSolvedPieces(next.state)
				if next.score == solvedScore {
					return next.initialTurn, true
				}
				if next.score > best.score {
					best = next
				}
				newFringe = append(newFringe, next)
			}
		}
		fringe = newFringe
	}

	if best.initialTurn == noTurn {
		// Plateau: no sequence improved the score, take a random turn.
		return s.rng.IntN(len(s.puzzle.Turns)), true
	}

	return best.initialTurn, true
}
