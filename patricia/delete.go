package patricia

// Remove deletes key, returning its former value and whether it was
// present. Implements spec.md §4.4.
func (t *Trie[K, V]) Remove(key K) (V, bool) {
	var zero V
	if t.analyzer.LengthInBits(key) == 0 {
		if !t.root.hasKey {
			return zero, false
		}
		old := t.root.value
		t.clearPayload(t.root)
		t.size--
		t.modCount++
		return old, true
	}

	n := t.nearestEntry(key)
	if !n.hasKey || t.analyzer.Compare(n.key, key) != 0 {
		return zero, false
	}
	old := n.value
	t.removeNode(n)
	return old, true
}

func (t *Trie[K, V]) clearPayload(n *node[K, V]) {
	var zk K
	var zv V
	n.key = zk
	n.value = zv
	n.hasKey = false
}

// removeNode dispatches on whether h is external (one child is a
// self-loop uplink) or internal (neither child points back at h), per
// spec.md §4.4. The root is never unlinked: removing its key only clears
// its payload.
func (t *Trie[K, V]) removeNode(h *node[K, V]) {
	if h == t.root {
		t.clearPayload(h)
		t.size--
		t.modCount++
		return
	}
	if h.left == h || h.right == h {
		t.removeExternal(h)
	} else {
		t.removeInternal(h)
	}
	t.clearPayload(h)
	t.size--
	t.modCount++
}

// removeExternal implements the simple case: one of h's children is a
// self-loop uplink; the other child c takes h's place in h.parent.
func (t *Trie[K, V]) removeExternal(h *node[K, V]) {
	p := h.parent
	var c *node[K, V]
	if h.left == h {
		c = h.right
	} else {
		c = h.left
	}
	if p.left == h {
		p.left = c
	} else {
		p.right = c
	}
	if c.bitIndex > p.bitIndex {
		c.parent = p
	} else {
		c.predecessor = p
	}
}

// removeInternal implements the complex case (h has no self-loop): h's
// predecessor p (the node whose uplink targets h) is promoted into h's
// position.
func (t *Trie[K, V]) removeInternal(h *node[K, V]) {
	p := h.predecessor

	// 1. p takes h's bit index.
	p.bitIndex = h.bitIndex

	// 2. Fix p's old neighborhood: p's slot in p.parent is replaced by
	// p's other child c.
	pWasLooping := p.left == p || p.right == p
	var c *node[K, V]
	if p.left == h {
		c = p.right
	} else {
		c = p.left
	}
	pParent := p.parent
	if pParent.left == p {
		pParent.left = c
	} else {
		pParent.right = c
	}
	if c.bitIndex > pParent.bitIndex {
		c.parent = pParent
	}
	if pWasLooping && pParent != h {
		p.predecessor = pParent
	}

	// 3. Fix h's old neighborhood: h's downlink children are re-parented
	// to p, and h's slot in h.parent is replaced by p.
	if h.left.parent == h {
		h.left.parent = p
	}
	if h.right.parent == h {
		h.right.parent = p
	}
	hParent := h.parent
	if hParent.left == h {
		hParent.left = p
	} else {
		hParent.right = p
	}

	// 4. p takes over h's links entirely.
	p.parent = hParent
	p.left = h.left
	p.right = h.right

	// 5. Any of p's new children that are now uplinks to p must record
	// p as their predecessor.
	if p.left.bitIndex <= p.bitIndex {
		p.left.predecessor = p
	}
	if p.right.bitIndex <= p.bitIndex {
		p.right.predecessor = p
	}
}
