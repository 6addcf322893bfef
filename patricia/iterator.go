package patricia

// Iterator walks a Trie's entries in increasing key order, failing fast
// if the trie is mutated by anything other than the iterator's own
// Remove. Implements spec.md §5.
type Iterator[K any, V any] struct {
	trie         *Trie[K, V]
	nodes        []*node[K, V]
	pos          int
	expectedMod  uint64
	lastReturned *node[K, V]
}

// Iterator returns a new fail-fast iterator positioned before the first
// entry.
func (t *Trie[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{trie: t, expectedMod: t.modCount}
	t.traverseInOrder(func(n *node[K, V]) bool {
		it.nodes = append(it.nodes, n)
		return true
	})
	return it
}

// HasNext reports whether another entry remains.
func (it *Iterator[K, V]) HasNext() bool {
	return it.pos < len(it.nodes)
}

// Next returns the next entry in order, or a ConcurrentModification
// error if the trie changed since the iterator was created (other than
// through this iterator's own Remove), or NoSuchElement if exhausted.
func (it *Iterator[K, V]) Next() (Entry[K, V], error) {
	var zero Entry[K, V]
	if it.trie.modCount != it.expectedMod {
		return zero, newErr(ConcurrentModification, "Iterator.Next")
	}
	if !it.HasNext() {
		return zero, newErr(NoSuchElement, "Iterator.Next")
	}
	n := it.nodes[it.pos]
	it.pos++
	it.lastReturned = n
	return entryOf(n), nil
}

// Remove deletes the entry most recently returned by Next. It advances
// the iterator's expected mod_count in lockstep so the iterator stays
// valid for subsequent calls.
func (it *Iterator[K, V]) Remove() error {
	if it.trie.modCount != it.expectedMod {
		return newErr(ConcurrentModification, "Iterator.Remove")
	}
	if it.lastReturned == nil {
		return newErr(IllegalArgument, "Iterator.Remove")
	}
	if it.lastReturned.hasKey {
		it.trie.removeNode(it.lastReturned)
	}
	it.expectedMod = it.trie.modCount
	it.lastReturned = nil
	return nil
}
