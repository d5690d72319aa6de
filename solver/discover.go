package solver

import (
	"slices"

	"github.com/akmonengine/prism"
	"github.com/akmonengine/prism/traverse"
)

// MetaMoveFilter accepts or rejects a candidate during discovery. A nil
// filter accepts everything.
type MetaMoveFilter func(m MetaMove) bool

// DiscoverMetaMoves enumerates turn sequences up to maxTurns turns long and
// returns the accepted metamoves sorted best-first (see MetaMove.Compare).
//
// The search only expands sequences starting from one representative turn
// per symmetry orbit; the discovered metamoves are then transported through
// every symmetry, which recovers the sequences the pruned branches would
// have produced. Sequences whose net effect duplicates an earlier one keep
// only the best representative.
func DiscoverMetaMoves(p *prism.Puzzle, filter MetaMoveFilter, maxTurns int) []MetaMove {
	singles := make([]MetaMove, len(p.Turns))
	for turnIndex := range p.Turns {
		singles[turnIndex] = NewMetaMove(p, []int{turnIndex}, p.Turns[turnIndex].FaceMap)
	}

	var discovered []MetaMove
	for _, rep := range orbitRepresentatives(p) {
		traverse.Combinations(singles, maxTurns-1, singles[rep],
			func(m, next MetaMove) MetaMove {
				return m.Apply(p, next)
			},
			func(m MetaMove) traverse.Result {
				if undoesLastTurn(p, m.Turns) {
					return traverse.Skip
				}
				// A one-turn sequence is just the turn itself, not worth
				// recording; it still expands into longer sequences.
				if len(m.Turns) > 1 && m.NumAffectedPieces > 0 && (filter == nil || filter(m)) {
					discovered = append(discovered, m)
				}

				return traverse.Continue
			})
	}

	return filterDuplicates(expandSymmetries(p, discovered))
}

// CombineMetaMoves composes sequences of up to maxMetaMoves of the given
// metamoves, collecting the accepted non-trivial combinations. Like
// discovery it deduplicates by net effect and sorts best-first.
func CombineMetaMoves(p *prism.Puzzle, filter MetaMoveFilter, metamoves []MetaMove, maxMetaMoves int) []MetaMove {
	var combined []MetaMove
	traverse.Combinations(metamoves, maxMetaMoves, EmptyMetaMove(p),
		func(m, next MetaMove) MetaMove {
			return m.Apply(p, next)
		},
		func(m MetaMove) traverse.Result {
			if m.NumAffectedPieces > 0 && (filter == nil || filter(m)) {
				combined = append(combined, m)
			}

			return traverse.Continue
		})

	return filterDuplicates(combined)
}

// orbitRepresentatives returns one turn index per orbit of the puzzle's
// symmetry group acting on turns.
func orbitRepresentatives(p *prism.Puzzle) []int {
	var reps []int
	visited := make([]bool, len(p.Turns))
	for turnIndex := range p.Turns {
		if visited[turnIndex] {
			continue
		}
		reps = append(reps, turnIndex)
		for _, sym := range p.Symmetries() {
			visited[sym.TurnMap[turnIndex]] = true
		}
	}

	return reps
}

// expandSymmetries transports every metamove through every puzzle symmetry.
func expandSymmetries(p *prism.Puzzle, metamoves []MetaMove) []MetaMove {
	if len(p.Symmetries()) == 0 {
		return metamoves
	}
	expanded := make([]MetaMove, 0, len(metamoves)*len(p.Symmetries()))
	for _, m := range metamoves {
		for _, sym := range p.Symmetries() {
			expanded = append(expanded, m.applySymmetry(p, sym))
		}
	}

	return expanded
}

// filterDuplicates keeps the best metamove per distinct face map and
// returns them sorted best-first.
func filterDuplicates(metamoves []MetaMove) []MetaMove {
	best := map[string]MetaMove{}
	for _, m := range metamoves {
		key := m.FaceMap.Key()
		if existing, ok := best[key]; !ok || m.Compare(existing) < 0 {
			best[key] = m
		}
	}

	deduplicated := make([]MetaMove, 0, len(best))
	for _, m := range best {
		deduplicated = append(deduplicated, m)
	}
	slices.SortFunc(deduplicated, MetaMove.Compare)

	return deduplicated
}

// findBestMetaMove chains up to depth of the given metamoves from the
// given state and returns the first chain that raises score, stopping
// early once maxScore is reached. Returns the empty metamove when no
// chain improves.
func findBestMetaMove(p *prism.Puzzle, state prism.PuzzleState, metamoves []MetaMove, depth int,
	score func(prism.PuzzleState) int, maxScore int) MetaMove {
	best := EmptyMetaMove(p)
	bestScore := score(state)

	traverse.Combinations(metamoves, depth, EmptyMetaMove(p),
		func(m, next MetaMove) MetaMove {
			return m.Apply(p, next)
		},
		func(m MetaMove) traverse.Result {
			next := p.GetDerivedState(state, m.FaceMap)
			nextScore := score(next)
			if nextScore > bestScore {
				best = m
				bestScore = nextScore

				// Any improvement will do, settling for the first one
				// found keeps each move cheap.
				return traverse.Break
			}
			if nextScore == maxScore {
				return traverse.Break
			}

			return traverse.Continue
		})

	return best
}

func undoesLastTurn(p *prism.Puzzle, turns []int) bool {
	if len(turns) < 2 {
		return false
	}

	return turns[len(turns)-1] == p.InvertedTurnIndex(turns[len(turns)-2])
}
