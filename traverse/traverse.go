// Package traverse provides a bounded-depth traversal over all sequences
// drawn from a fixed item list, combining each sequence into a single
// value as it is built.
package traverse

// Result tells the traversal what to do after visiting a combination.
type Result int

const (
	// Continue expands the visited combination with every item.
	Continue Result = iota
	// Skip prunes the visited combination's whole subtree.
	Skip
	// Break stops the traversal entirely.
	Break
)

type stateToExpand[C any] struct {
	combinedPrevious C
	itemIndex        int
}

// Combinations visits every sequence of items up to depthLimit long,
// depth-first in item order. Each visited combination is combiner applied
// to the parent combination and the next item; the initial combination is
// visited first. Branches carry their own combined values, so combiner may
// return freely shared immutable values but must not mutate its inputs.
//
// The visitor's result is honored before children are expanded: Skip
// prunes the subtree below the visited combination, Break ends the whole
// traversal.
func Combinations[Item, C any](
	items []Item,
	depthLimit int,
	initial C,
	combiner func(previous C, item Item) C,
	visit func(combined C) Result,
) {
	if visit(initial) == Break {
		return
	}
	if len(items) == 0 || depthLimit == 0 {
		return
	}

	// Iterative backtracking with an explicit fringe stack; depth limits
	// can be large enough that call-stack recursion is not safe.
	fringe := []stateToExpand[C]{{combinedPrevious: initial, itemIndex: 0}}

	for len(fringe) > 0 {
		top := &fringe[len(fringe)-1]
		combined := combiner(top.combinedPrevious, items[top.itemIndex])
		switch visit(combined) {
		case Skip:
			increment(&fringe, len(items))
		case Continue:
			if len(fringe) < depthLimit {
				fringe = append(fringe, stateToExpand[C]{combinedPrevious: combined, itemIndex: 0})
			} else {
				increment(&fringe, len(items))
			}
		case Break:
			return
		}
	}
}

// increment advances the deepest fringe entry to its next item, popping
// exhausted entries.
func increment[C any](fringe *[]stateToExpand[C], numItems int) {
	for len(*fringe) > 0 {
		top := &(*fringe)[len(*fringe)-1]
		if top.itemIndex < numItems-1 {
			top.itemIndex++
			return
		}
		*fringe = (*fringe)[:len(*fringe)-1]
	}
}
