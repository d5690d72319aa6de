package solver

import "github.com/akmonengine/prism"

// MetaMoveOpts configures a MetaMoveSolver.
type MetaMoveOpts struct {
	// DiscoveryDepth is the maximum turn count of the discovered basis
	// metamoves. Defaults to 4.
	DiscoveryDepth int
	// SearchDepth is how many basis metamoves each Next call is willing
	// to chain. Defaults to 2.
	SearchDepth int
	// BasisSize caps the basis at the best metamoves discovered, keeping
	// the per-move search tractable. Defaults to 64.
	BasisSize int
}

func (o *MetaMoveOpts) applyDefaults() {
	if o.DiscoveryDepth <= 0 {
		o.DiscoveryDepth = 4
	}
	if o.SearchDepth <= 0 {
		o.SearchDepth = 2
	}
	if o.BasisSize <= 0 {
		o.BasisSize = 64
	}
}

// MetaMoveSolver discovers a basis of low-impact metamoves once at
// construction, then repeatedly chains a bounded number of them, applying
// the first chain that increases the number of solved pieces. The turns of
// an accepted chain are emitted one per Next call before the next search.
type MetaMoveSolver struct {
	puzzle *prism.Puzzle
	state  prism.PuzzleState
	basis  []MetaMove
	depth  int
	queued []int
}

func NewMetaMoveSolver(p *prism.Puzzle, initial prism.PuzzleState, opts MetaMoveOpts) (*MetaMoveSolver, error) {
	opts.applyDefaults()
	basis := DiscoverMetaMoves(p, nil, opts.DiscoveryDepth)
	if len(basis) == 0 {
		return nil, ErrNoMetaMoves
	}
	if len(basis) > opts.BasisSize {
		basis = basis[:opts.BasisSize]
	}

	return &MetaMoveSolver{
		puzzle: p,
		state:  initial.Clone(),
		basis:  basis,
		depth:  opts.SearchDepth,
	}, nil
}

func (s *MetaMoveSolver) State() prism.PuzzleState {
	return s.state
}

func (s *MetaMoveSolver) Next() (int, bool) {
	if len(s.queued) > 0 {
		turnIndex := s.queued[0]
		s.queued = s.queued[1:]
		s.state = s.puzzle.GetDerivedStateTurnIndex(s.state, turnIndex)

		return turnIndex, true
	}

	best := s.findBestMetaMove()
	if len(best.Turns) == 0 {
		return 0, false
	}
	s.queued = append(s.queued, best.Turns...)

	return s.Next()
}

// findBestMetaMove chains basis metamoves up to the search depth and
// returns the first chain that improves on the current number of solved
// pieces, or the empty metamove when none does.
func (s *MetaMoveSolver) findBestMetaMove() MetaMove {
	return findBestMetaMove(s.puzzle, s.state, s.basis, s.depth,
		func(state prism.PuzzleState) int {
			return s.puzzle.GetNumSolvedPieces(state)
		},
		s.puzzle.GetNumPieces())
}
