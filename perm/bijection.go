// Package perm implements permutations over index ranges, used both for
// puzzle face maps and for symmetry maps.
package perm

import (
	"fmt"
	"strings"
)

// Bijection is a permutation of indices in "pull" form: the slice index is
// the new position and the value is the old position to pull from.
type Bijection []int

// Identity returns the permutation that maps every index to itself.
func Identity(count int) Bijection {
	b := make(Bijection, count)
	for i := range b {
		b[i] = i
	}
	return b
}

// Apply composes another bijection after this one. The result pulls
// through other first: result[i] = b[other[i]].
func (b Bijection) Apply(other Bijection) Bijection {
	result := make(Bijection, len(other))
	for i, fromOther := range other {
		result[i] = b[fromOther]
	}
	return result
}

// Invert returns the inverse permutation.
func (b Bijection) Invert() Bijection {
	inverted := make(Bijection, len(b))
	for i, val := range b {
		inverted[val] = i
	}
	return inverted
}

// IsInverseOf reports whether applying other after this bijection yields
// the identity.
func (b Bijection) IsInverseOf(other Bijection) bool {
	for i, val := range b {
		if other[val] != i {
			return false
		}
	}
	return true
}

// Equal reports whether two bijections are the same permutation.
func (b Bijection) Equal(other Bijection) bool {
	if len(b) != len(other) {
		return false
	}
	for i, val := range b {
		if other[i] != val {
			return false
		}
	}
	return true
}

// IsIdentity reports whether the bijection maps every index to itself.
func (b Bijection) IsIdentity() bool {
	for i, val := range b {
		if val != i {
			return false
		}
	}
	return true
}

// Mask restricts the bijection to the indices selected by the mask; all
// other indices map to themselves. The mask must be the same length as the
// bijection.
func (b Bijection) Mask(mask []bool) Bijection {
	if len(mask) != len(b) {
		panic(fmt.Sprintf("perm: mask length %d does not match bijection length %d", len(mask), len(b)))
	}
	result := make(Bijection, len(b))
	for i, mapping := range b {
		if mask[i] {
			result[i] = mapping
		} else {
			result[i] = i
		}
	}
	return result
}

// Cycles decomposes the permutation into its disjoint cycles, skipping
// fixed points. Each cycle walks b[i] until it returns to i.
func (b Bijection) Cycles() [][]int {
	visited := make([]bool, len(b))
	var cycles [][]int
	for i := range b {
		if visited[i] || b[i] == i {
			visited[i] = true
			continue
		}
		var cycle []int
		for j := i; !visited[j]; j = b[j] {
			visited[j] = true
			cycle = append(cycle, j)
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// Key returns a compact string form usable as a map key for exact
// deduplication.
func (b Bijection) Key() string {
	var sb strings.Builder
	for i, val := range b {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", val)
	}
	return sb.String()
}
