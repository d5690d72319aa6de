package perm

import "container/heap"

// Trie stores values keyed by Bijection, organized as a prefix tree over
// the bijection's mappings. Besides exact lookup, it supports iterating
// stored entries ordered by how many positions differ from a searched
// bijection, which is how the phased solver finds near-matching metamoves.
type Trie[T any] struct {
	root trieNode[T]
}

type trieNode[T any] struct {
	children []trieChild[T]
	value    *T
}

type trieChild[T any] struct {
	mapping int
	node    *trieNode[T]
}

// NewTrie creates an empty trie.
func NewTrie[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Insert stores a value under a bijection, replacing any previous value
// stored under an equal bijection.
func (t *Trie[T]) Insert(b Bijection, value T) {
	node := &t.root
	for _, mapping := range b {
		var next *trieNode[T]
		for _, child := range node.children {
			if child.mapping == mapping {
				next = child.node
				break
			}
		}
		if next == nil {
			next = &trieNode[T]{}
			node.children = append(node.children, trieChild[T]{mapping: mapping, node: next})
		}
		node = next
	}
	node.value = &value
}

// Get returns the value stored under exactly the given bijection.
func (t *Trie[T]) Get(b Bijection) (T, bool) {
	node := &t.root
	for _, mapping := range b {
		var next *trieNode[T]
		for _, child := range node.children {
			if child.mapping == mapping {
				next = child.node
				break
			}
		}
		if next == nil {
			var zero T
			return zero, false
		}
		node = next
	}
	if node.value == nil {
		var zero T
		return zero, false
	}
	return *node.value, true
}

// SimilarEntry is a stored value together with the number of positions in
// which its key differs from the searched bijection.
type SimilarEntry[T any] struct {
	Differences int
	Value       T
}

// SimilarIterator yields stored entries in order of increasing difference
// from the searched bijection.
type SimilarIterator[T any] struct {
	heap   similarHeap[T]
	search Bijection
}

// MostSimilar returns an iterator over all stored entries, most similar
// first. The searched bijection must have the same length as the stored
// keys.
func (t *Trie[T]) MostSimilar(search Bijection) *SimilarIterator[T] {
	it := &SimilarIterator[T]{search: search}
	it.heap = append(it.heap, similarItem[T]{node: &t.root})
	return it
}

// Next returns the next entry, or false when the trie is exhausted.
func (it *SimilarIterator[T]) Next() (SimilarEntry[T], bool) {
	for len(it.heap) > 0 {
		item := heap.Pop(&it.heap).(similarItem[T])
		for _, child := range item.node.children {
			differences := item.differences
			if child.mapping != it.search[item.index] {
				differences++
			}
			heap.Push(&it.heap, similarItem[T]{
				node:        child.node,
				differences: differences,
				index:       item.index + 1,
			})
		}
		if item.node.value != nil {
			return SimilarEntry[T]{Differences: item.differences, Value: *item.node.value}, true
		}
	}
	return SimilarEntry[T]{}, false
}

type similarItem[T any] struct {
	node        *trieNode[T]
	differences int
	index       int
}

// similarHeap is a min-heap on differences.
type similarHeap[T any] []similarItem[T]

func (h similarHeap[T]) Len() int { return len(h) }
func (h similarHeap[T]) Less(i, j int) bool { return h[i].differences < h[j].differences }
func (h similarHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *similarHeap[T]) Push(x any) { *h = append(*h, x.(similarItem[T])) }
func (h *similarHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
