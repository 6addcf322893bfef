package patricia

import (
	"math"
	"sort"
)

// Decision tells a Cursor-driven walk what to do after visiting an
// entry. Implements spec.md §4.6/§4.7.
type Decision int

const (
	// ContinueCursor moves on to the next entry.
	ContinueCursor Decision = iota
	// ExitCursor stops the walk and returns the entry just visited.
	ExitCursor
	// RemoveCursor deletes the entry just visited and continues. Only
	// legal during Traverse; Select and SelectWithCursor reject it.
	RemoveCursor
	// RemoveAndExitCursor deletes the entry just visited and stops,
	// returning a detached copy (not aliasing live trie structure).
	RemoveAndExitCursor
)

// Cursor is invoked once per entry during a Select or Traverse walk.
type Cursor[K any, V any] func(Entry[K, V]) Decision

// Select returns the stored entry whose key is XOR-closest to k: the
// entry sharing the longest common prefix with k, ties broken toward
// the lexicographically smaller key. Implements spec.md §4.6.
func (t *Trie[K, V]) Select(k K) (Entry[K, V], bool) {
	var result Entry[K, V]
	var found bool
	_, _, _ = t.SelectWithCursor(k, func(e Entry[K, V]) Decision {
		result = e
		found = true
		return ExitCursor
	})
	return result, found
}

// SelectWithCursor visits stored entries in order of XOR-closeness to
// k, invoking cursor on each until it returns ExitCursor or
// RemoveAndExitCursor, or every entry has been visited. RemoveCursor is
// not valid here (removal mid-select would invalidate the closeness
// ranking already computed) and yields an Unsupported error.
func (t *Trie[K, V]) SelectWithCursor(k K, cursor Cursor[K, V]) (Entry[K, V], bool, error) {
	type candidate struct {
		n     *node[K, V]
		score int
	}

	var all []candidate
	lenK := t.analyzer.LengthInBits(k)
	t.traverseInOrder(func(c *node[K, V]) bool {
		cLen := t.analyzer.LengthInBits(c.key)
		b := t.analyzer.BitIndex(k, 0, lenK, c.key, 0, cLen)
		all = append(all, candidate{n: c, score: closenessScore(b)})
		return true
	})
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return t.analyzer.Compare(all[i].n.key, all[j].n.key) < 0
	})

	var zero Entry[K, V]
	for _, cand := range all {
		e := entryOf(cand.n)
		switch cursor(e) {
		case ContinueCursor:
			continue
		case ExitCursor:
			return e, true, nil
		case RemoveCursor:
			return zero, false, newErr(Unsupported, "Select")
		case RemoveAndExitCursor:
			t.removeNode(cand.n)
			return e, true, nil
		}
	}
	return zero, false, nil
}

// closenessScore maps a BitIndex result to a value where larger means
// closer: an exact match (EqualBitKey) beats any differing prefix
// length, and NullBitKey (both sides empty) sits at the bottom.
func closenessScore(b int) int {
	switch b {
	case EqualBitKey:
		return math.MaxInt
	case NullBitKey:
		return -1
	default:
		return b
	}
}
