package perm

import "testing"

func TestTrieGet(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(Bijection{0, 1, 2}, "identity")
	trie.Insert(Bijection{1, 0, 2}, "swap")

	tests := []struct {
		name     string
		key      Bijection
		expected string
		found    bool
	}{
		{"identity", Bijection{0, 1, 2}, "identity", true},
		{"swap", Bijection{1, 0, 2}, "swap", true},
		{"missing", Bijection{2, 1, 0}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := trie.Get(tt.key)
			if found != tt.found || got != tt.expected {
				t.Errorf("Get(%v) = (%q, %v), want (%q, %v)", tt.key, got, found, tt.expected, tt.found)
			}
		})
	}
}

func TestTrieInsertReplaces(t *testing.T) {
	trie := NewTrie[int]()
	trie.Insert(Bijection{1, 0}, 1)
	trie.Insert(Bijection{1, 0}, 2)
	got, found := trie.Get(Bijection{1, 0})
	if !found || got != 2 {
		t.Errorf("Get = (%d, %v), want the replacing value", got, found)
	}
}

func TestMostSimilar(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(Bijection{0, 1, 2, 3}, "identity")
	trie.Insert(Bijection{1, 0, 2, 3}, "front swap")
	trie.Insert(Bijection{3, 2, 1, 0}, "reversal")

	iter := trie.MostSimilar(Bijection{0, 1, 2, 3})

	first, ok := iter.Next()
	if !ok || first.Value != "identity" || first.Differences != 0 {
		t.Fatalf("first = (%+v, %v), want identity at 0 differences", first, ok)
	}
	second, ok := iter.Next()
	if !ok || second.Value != "front swap" || second.Differences != 2 {
		t.Fatalf("second = (%+v, %v), want front swap at 2 differences", second, ok)
	}
	third, ok := iter.Next()
	if !ok || third.Value != "reversal" || third.Differences != 4 {
		t.Fatalf("third = (%+v, %v), want reversal at 4 differences", third, ok)
	}
	if _, ok := iter.Next(); ok {
		t.Error("iterator should be exhausted after all entries")
	}
}

func TestMostSimilarOrderedByDifferences(t *testing.T) {
	trie := NewTrie[int]()
	keys := []Bijection{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}
	for i, key := range keys {
		trie.Insert(key, i)
	}

	iter := trie.MostSimilar(Bijection{0, 1, 2})
	previous := -1
	count := 0
	for {
		entry, ok := iter.Next()
		if !ok {
			break
		}
		if entry.Differences < previous {
			t.Errorf("differences went backwards: %d after %d", entry.Differences, previous)
		}
		previous = entry.Differences
		count++
	}
	if count != len(keys) {
		t.Errorf("iterated %d entries, want %d", count, len(keys))
	}
}
