package solver

import (
	"fmt"
	"slices"

	"github.com/akmonengine/prism"
	"github.com/akmonengine/prism/perm"
	"github.com/akmonengine/prism/traverse"
)

// PhasedOpts configures a MetaMovePhasedSolver.
type PhasedOpts struct {
	// DiscoveryDepth is the maximum turn count of the discovered basis
	// metamoves. Defaults to 4.
	DiscoveryDepth int
	// ConjugateDepth is the length of the setup sequences tried when
	// conjugating a phase's cycle metamove. Defaults to 4.
	ConjugateDepth int
}

func (o *PhasedOpts) applyDefaults() {
	if o.DiscoveryDepth <= 0 {
		o.DiscoveryDepth = 4
	}
	if o.ConjugateDepth <= 0 {
		o.ConjugateDepth = 4
	}
}

const (
	// maxPhaseTools bounds the per-phase tool list. Tools for the same
	// effect are interchangeable, only the variety matters.
	maxPhaseTools = 24
	// maxChainBase bounds the basis slice searched by the chained
	// fallback; the basis is sorted best-first so the cut loses only the
	// clumsiest metamoves.
	maxChainBase = 1024
)

// MetaMovePhasedSolver solves piece types one at a time, the way human
// speedsolving methods finish a cube: for each type it collects metamoves
// touching only that type and the types not yet solved, then conjugates
// and chains them until every piece of the type is home. A parity-flipper
// metamove handles the two-piece states a three-cycle cannot reach, and
// tools affecting one or two pieces of the type handle pieces twisted in
// place.
type MetaMovePhasedSolver struct {
	puzzle       *prism.Puzzle
	state        prism.PuzzleState
	phases       []solvePhase
	currentPhase int
	queued       []int
}

type solvePhase struct {
	threeCycle     *MetaMove
	parityFlipper  *MetaMove
	tools          []MetaMove
	base           []MetaMove
	target         prism.PieceType
	preserve       []prism.PieceType
	conjugateDepth int
}

func NewMetaMovePhasedSolver(p *prism.Puzzle, initial prism.PuzzleState, opts PhasedOpts) (*MetaMovePhasedSolver, error) {
	opts.applyDefaults()
	metamoves := DiscoverMetaMoves(p, nil, opts.DiscoveryDepth)
	if len(metamoves) == 0 {
		return nil, ErrNoMetaMoves
	}

	var phases []solvePhase
	var preserve []prism.PieceType
	anyTools := false
	for _, target := range phaseOrder(p, metamoves) {
		phase := newSolvePhase(p, metamoves, target, preserve, len(phases) == 0, opts.ConjugateDepth)
		anyTools = anyTools || len(phase.tools) > 0
		phases = append(phases, phase)
		preserve = append(preserve, target)
	}
	if !anyTools {
		return nil, fmt.Errorf("%w (none derivable from a basis of %d metamoves)", ErrNoThreeCycle, len(metamoves))
	}

	return &MetaMovePhasedSolver{
		puzzle: p,
		state:  initial.Clone(),
		phases: phases,
	}, nil
}

func (s *MetaMovePhasedSolver) State() prism.PuzzleState {
	return s.state
}

func (s *MetaMovePhasedSolver) Next() (int, bool) {
	for {
		if len(s.queued) > 0 {
			turnIndex := s.queued[0]
			s.queued = s.queued[1:]
			s.state = s.puzzle.GetDerivedStateTurnIndex(s.state, turnIndex)

			return turnIndex, true
		}

		phase := &s.phases[s.currentPhase]
		best := phase.next(s.puzzle, s.state)
		if len(best.Turns) > 0 {
			s.queued = append(s.queued, best.Turns...)
			continue
		}
		if s.currentPhase == len(s.phases)-1 {
			return 0, false
		}
		solved := s.puzzle.GetNumSolvedPiecesOfType(s.state, phase.target)
		if solved != s.puzzle.GetNumPiecesOfType(phase.target) {
			// The phase stalled short of finishing its type; continuing
			// to the next phase would scramble what it did solve.
			return 0, false
		}
		s.currentPhase++
	}
}

// phaseOrder lists the puzzle's piece types most-constrained first (most
// faces per piece), skipping types no metamove can move at all.
func phaseOrder(p *prism.Puzzle, metamoves []MetaMove) []prism.PieceType {
	var order []prism.PieceType
	for _, t := range p.PieceTypes() {
		movable := false
		for _, m := range metamoves {
			if numAffectedOfType(p, m, t) > 0 {
				movable = true
				break
			}
		}
		if movable {
			order = append(order, t)
		}
	}
	for i := range order {
		for j := i + 1; j < len(order); j++ {
			if order[j].FacesPerPiece() > order[i].FacesPerPiece() {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	return order
}

func newSolvePhase(p *prism.Puzzle, base []MetaMove, target prism.PieceType, preserve []prism.PieceType,
	solveParity bool, conjugateDepth int) solvePhase {
	// Restricting to metamoves that already preserve the earlier types
	// shrinks every later search considerably when such metamoves exist.
	var subset []MetaMove
	for _, m := range base {
		if metaMovePreserves(p, m, preserve) {
			subset = append(subset, m)
		}
	}
	if len(subset) > 0 {
		base = subset
	}

	phase := solvePhase{
		target:         target,
		preserve:       preserve,
		conjugateDepth: conjugateDepth,
		base:           base,
	}

	// Tools are preserving metamoves sorted by how few pieces of the
	// target type they touch: a one-piece tool twists a piece in place,
	// a three-piece tool is the classic cycle.
	type tool struct {
		m        MetaMove
		affected int
	}
	var tools []tool
	consider := func(candidate MetaMove) bool {
		if !metaMovePreserves(p, candidate, preserve) {
			return false
		}
		affected := numAffectedOfType(p, candidate, target)
		if affected > 0 {
			tools = append(tools, tool{m: candidate, affected: affected})
		}
		if phase.threeCycle == nil && affected == 3 {
			cycle := candidate
			phase.threeCycle = &cycle
		}
		if solveParity && phase.parityFlipper == nil && affected > 0 && flipsParity(candidate, target) {
			flipper := candidate
			phase.parityFlipper = &flipper
		}

		return phase.threeCycle != nil && (!solveParity || phase.parityFlipper != nil)
	}

	for _, m := range base {
		consider(m)
	}
	// Pair composition derives what the basis lacks: two metamoves with
	// near-equal effect on the target faces combine into one touching
	// only their difference.
	if phase.threeCycle == nil || (solveParity && phase.parityFlipper == nil) {
		trie := perm.NewTrie[MetaMove]()
		for _, m := range base {
			trie.Insert(m.FaceMap.Mask(target.FaceMask()), m)
		}
		for _, initial := range base {
			combined, ok := derivePairMetaMove(p, trie, initial, target, preserve)
			if !ok {
				continue
			}
			if consider(combined) {
				break
			}
		}
	}

	slices.SortStableFunc(tools, func(a, b tool) int {
		if a.affected != b.affected {
			return a.affected - b.affected
		}
		return a.m.Compare(b.m)
	})
	for _, t := range tools[:min(len(tools), maxPhaseTools)] {
		phase.tools = append(phase.tools, t.m)
	}

	return phase
}

// derivePairMetaMove composes initial with the inverse of its nearest
// neighbor in the trie, producing a metamove whose effect on the target
// type is the small difference between the two.
func derivePairMetaMove(p *prism.Puzzle, trie *perm.Trie[MetaMove], initial MetaMove,
	target prism.PieceType, preserve []prism.PieceType) (MetaMove, bool) {
	iter := trie.MostSimilar(initial.FaceMap.Mask(target.FaceMask()))
	for {
		entry, ok := iter.Next()
		if !ok {
			return MetaMove{}, false
		}
		if entry.Differences == 0 {
			continue
		}
		combined := initial.Apply(p, entry.Value.Invert(p))
		if metaMovePreserves(p, combined, preserve) && numAffectedOfType(p, combined, target) > 0 {
			return combined, true
		}
	}
}

// flipsParity reports whether the metamove's face map has exactly one
// even-length cycle within the target type, which is what fixes a state
// with two swapped pieces of that type.
func flipsParity(m MetaMove, target prism.PieceType) bool {
	mask := target.FaceMask()
	evenCycles := 0
	for _, cycle := range m.Cycles() {
		// All faces of a cycle stay within one piece type, checking the
		// first is enough.
		if mask[cycle[0]] && len(cycle)%2 == 0 {
			evenCycles++
		}
	}

	return evenCycles == 1
}

// forEachConjugation visits setup · inner · setup⁻¹ for every setup
// sequence of at most depth single turns, including the empty setup.
// The callback returns true to stop early.
func forEachConjugation(p *prism.Puzzle, singles []MetaMove, inner MetaMove, depth int, visit func(MetaMove) bool) {
	traverse.Combinations(singles, depth, EmptyMetaMove(p),
		func(m, next MetaMove) MetaMove {
			return m.Apply(p, next)
		},
		func(setup MetaMove) traverse.Result {
			candidate := setup.Apply(p, inner).Apply(p, setup.Invert(p))
			if visit(candidate) {
				return traverse.Break
			}

			return traverse.Continue
		})
}

func metaMovePreserves(p *prism.Puzzle, m MetaMove, preserve []prism.PieceType) bool {
	derived := p.GetDerivedState(p.GetInitialState(), m.FaceMap)
	for _, t := range preserve {
		if p.GetNumSolvedPiecesOfType(derived, t) != p.GetNumPiecesOfType(t) {
			return false
		}
	}

	return true
}

func numAffectedOfType(p *prism.Puzzle, m MetaMove, t prism.PieceType) int {
	derived := p.GetDerivedState(p.GetInitialState(), m.FaceMap)

	return p.GetNumPiecesOfType(t) - p.GetNumSolvedPiecesOfType(derived, t)
}

// score rates a candidate outcome state: -1 when it disturbs a type
// solved by an earlier phase, otherwise the solved count of the target
// type. Setup sequences do not respect the preserved types on their own,
// so candidates are rated on the outcome rather than trusted.
func (ph *solvePhase) score(p *prism.Puzzle, next prism.PuzzleState) int {
	for _, t := range ph.preserve {
		if p.GetNumSolvedPiecesOfType(next, t) != p.GetNumPiecesOfType(t) {
			return -1
		}
	}

	return p.GetNumSolvedPiecesOfType(next, ph.target)
}

// next picks the phase's next metamove for the given state, trying the
// cheapest search first: the parity flipper when two pieces of the target
// type remain and flipping helps, then conjugations of the phase's cycle
// metamoves by short setup sequences, then chains of up to two basis
// metamoves, which reach states a conjugated cycle cannot improve, such
// as a piece twisted in place. An empty metamove means the phase can make
// no progress.
func (ph *solvePhase) next(p *prism.Puzzle, state prism.PuzzleState) MetaMove {
	solvedOfType := p.GetNumSolvedPiecesOfType(state, ph.target)
	numOfType := p.GetNumPiecesOfType(ph.target)
	if solvedOfType == numOfType {
		return EmptyMetaMove(p)
	}

	var inners []MetaMove
	if numOfType-solvedOfType == 2 && ph.parityFlipper != nil {
		flipped := p.GetDerivedState(state, ph.parityFlipper.FaceMap)
		if ph.score(p, flipped) > solvedOfType {
			return *ph.parityFlipper
		}
		// The flipper swaps some other pair in this state; conjugating
		// it can still retarget the right one.
		inners = append(inners, *ph.parityFlipper)
	}
	if ph.threeCycle != nil {
		inners = append(inners, *ph.threeCycle)
	}

	singles := make([]MetaMove, len(p.Turns))
	for turnIndex := range p.Turns {
		singles[turnIndex] = NewMetaMove(p, []int{turnIndex}, p.Turns[turnIndex].FaceMap)
	}

	best := EmptyMetaMove(p)
	bestScore := solvedOfType
	for _, inner := range inners {
		forEachConjugation(p, singles, inner, ph.conjugateDepth, func(candidate MetaMove) bool {
			score := ph.score(p, p.GetDerivedState(state, candidate.FaceMap))
			if score > bestScore {
				best = candidate
				bestScore = score
			}

			return score == numOfType
		})
		if bestScore == numOfType {
			break
		}
	}
	if len(best.Turns) > 0 {
		return best
	}

	items := slices.Clone(ph.tools)
	items = append(items, ph.base[:min(len(ph.base), maxChainBase)]...)
	traverse.Combinations(items, 2, EmptyMetaMove(p),
		func(m, next MetaMove) MetaMove {
			return m.Apply(p, next)
		},
		func(m MetaMove) traverse.Result {
			score := ph.score(p, p.GetDerivedState(state, m.FaceMap))
			if score > bestScore {
				best = m
				bestScore = score

				// Any improvement will do, settling for the first one
				// found keeps each move cheap.
				return traverse.Break
			}

			return traverse.Continue
		})

	return best
}
