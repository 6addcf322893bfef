package patricia

// Traverse walks every stored entry in increasing key order, invoking
// cursor on each. Implements spec.md §4.7. Unlike SelectWithCursor,
// RemoveCursor is legal here: the entry just visited is deleted and
// the walk resumes with the next entry in the original order.
func (t *Trie[K, V]) Traverse(cursor Cursor[K, V]) (Entry[K, V], bool) {
	var nodes []*node[K, V]
	t.traverseInOrder(func(c *node[K, V]) bool {
		nodes = append(nodes, c)
		return true
	})

	var zero Entry[K, V]
	for _, n := range nodes {
		if !n.hasKey {
			// Removed by an earlier step in this same walk.
			continue
		}
		e := entryOf(n)
		switch cursor(e) {
		case ContinueCursor:
			continue
		case ExitCursor:
			return e, true
		case RemoveCursor:
			t.removeNode(n)
		case RemoveAndExitCursor:
			t.removeNode(n)
			return e, true
		}
	}
	return zero, false
}

// ForEach calls fn on every stored entry in increasing key order.
func (t *Trie[K, V]) ForEach(fn func(Entry[K, V])) {
	t.Traverse(func(e Entry[K, V]) Decision {
		fn(e)
		return ContinueCursor
	})
}
