package patricia

// KeySet is a live view over a Trie's keys. It supports removal but not
// insertion.
type KeySet[K any, V any] struct{ trie *Trie[K, V] }

// KeySet returns a view over this trie's keys.
func (t *Trie[K, V]) KeySet() *KeySet[K, V] { return &KeySet[K, V]{trie: t} }

func (ks *KeySet[K, V]) Size() int              { return ks.trie.Size() }
func (ks *KeySet[K, V]) Contains(k K) bool      { return ks.trie.ContainsKey(k) }
func (ks *KeySet[K, V]) Remove(k K) bool        { _, ok := ks.trie.Remove(k); return ok }
func (ks *KeySet[K, V]) Iterator() *Iterator[K, V] { return ks.trie.Iterator() }

// Values is a live view over a Trie's values.
type Values[K any, V any] struct{ trie *Trie[K, V] }

// Values returns a view over this trie's values.
func (t *Trie[K, V]) Values() *Values[K, V] { return &Values[K, V]{trie: t} }

func (vs *Values[K, V]) Size() int                 { return vs.trie.Size() }
func (vs *Values[K, V]) Iterator() *Iterator[K, V] { return vs.trie.Iterator() }

// EntrySet is a live view over a Trie's entries.
type EntrySet[K any, V any] struct{ trie *Trie[K, V] }

// EntrySet returns a view over this trie's entries.
func (t *Trie[K, V]) EntrySet() *EntrySet[K, V] { return &EntrySet[K, V]{trie: t} }

func (es *EntrySet[K, V]) Size() int                 { return es.trie.Size() }
func (es *EntrySet[K, V]) Iterator() *Iterator[K, V] { return es.trie.Iterator() }

// RangeView is a live, bounded submap of a Trie: the half-open range
// [from?, to?) with independently configurable inclusivity at each end.
// Implements spec.md §4.9.
type RangeView[K any, V any] struct {
	trie          *Trie[K, V]
	from          *K
	fromInclusive bool
	to            *K
	toInclusive   bool
}

// HeadMap returns the view of all entries strictly less than to.
func (t *Trie[K, V]) HeadMap(to K) *RangeView[K, V] {
	return &RangeView[K, V]{trie: t, to: &to, toInclusive: false}
}

// TailMap returns the view of all entries greater than or equal to from.
func (t *Trie[K, V]) TailMap(from K) *RangeView[K, V] {
	return &RangeView[K, V]{trie: t, from: &from, fromInclusive: true}
}

// SubMap returns the view [from, to).
func (t *Trie[K, V]) SubMap(from, to K) *RangeView[K, V] {
	return &RangeView[K, V]{trie: t, from: &from, fromInclusive: true, to: &to, toInclusive: false}
}

func (r *RangeView[K, V]) inRange(k K) bool {
	cmp := r.trie.analyzer.Compare
	if r.from != nil {
		c := cmp(k, *r.from)
		if c < 0 || (c == 0 && !r.fromInclusive) {
			return false
		}
	}
	if r.to != nil {
		c := cmp(k, *r.to)
		if c > 0 || (c == 0 && !r.toInclusive) {
			return false
		}
	}
	return true
}

// Get returns the value for k if k is in range and stored.
func (r *RangeView[K, V]) Get(k K) (V, bool) {
	var zero V
	if !r.inRange(k) {
		return zero, false
	}
	return r.trie.Get(k)
}

// Put stores (k, v), failing with OutOfRange if k lies outside the view.
func (r *RangeView[K, V]) Put(k K, v V) (V, bool, error) {
	var zero V
	if !r.inRange(k) {
		return zero, false, newErr(OutOfRange, "RangeView.Put")
	}
	old, had := r.trie.Put(k, v)
	return old, had, nil
}

// ContainsKey reports whether k is in range and stored.
func (r *RangeView[K, V]) ContainsKey(k K) bool {
	return r.inRange(k) && r.trie.ContainsKey(k)
}

// Remove deletes k if it lies within the view.
func (r *RangeView[K, V]) Remove(k K) (V, bool) {
	var zero V
	if !r.inRange(k) {
		return zero, false
	}
	return r.trie.Remove(k)
}

// FirstKey resolves to the ceiling (inclusive from) or higher
// (exclusive from) of the view's lower bound, or the trie's first key
// when unbounded below.
func (r *RangeView[K, V]) FirstKey() (K, error) {
	var zero K
	var e Entry[K, V]
	var ok bool
	switch {
	case r.from == nil:
		n, found := r.trie.firstEntry()
		if found {
			e, ok = entryOf(n), true
		}
	case r.fromInclusive:
		e, ok = r.trie.Ceiling(*r.from)
	default:
		e, ok = r.trie.Higher(*r.from)
	}
	if !ok || !r.inRange(e.Key) {
		return zero, newErr(NoSuchElement, "RangeView.FirstKey")
	}
	return e.Key, nil
}

// LastKey resolves to the floor (inclusive to) or lower (exclusive to)
// of the view's upper bound, or the trie's last key when unbounded
// above.
func (r *RangeView[K, V]) LastKey() (K, error) {
	var zero K
	var e Entry[K, V]
	var ok bool
	switch {
	case r.to == nil:
		n, found := r.trie.lastEntry()
		if found {
			e, ok = entryOf(n), true
		}
	case r.toInclusive:
		e, ok = r.trie.Floor(*r.to)
	default:
		e, ok = r.trie.Lower(*r.to)
	}
	if !ok || !r.inRange(e.Key) {
		return zero, newErr(NoSuchElement, "RangeView.LastKey")
	}
	return e.Key, nil
}

// SubMap narrows this view to [from, to), validating that the new
// bounds lie within the current range.
func (r *RangeView[K, V]) SubMap(from, to K, fromInclusive, toInclusive bool) (*RangeView[K, V], error) {
	cmp := r.trie.analyzer.Compare
	if r.from != nil && cmp(from, *r.from) < 0 {
		return nil, newErr(OutOfRange, "RangeView.SubMap")
	}
	if r.to != nil && cmp(to, *r.to) > 0 {
		return nil, newErr(OutOfRange, "RangeView.SubMap")
	}
	return &RangeView[K, V]{trie: r.trie, from: &from, fromInclusive: fromInclusive, to: &to, toInclusive: toInclusive}, nil
}

// Entries returns every entry currently in range, in order.
func (r *RangeView[K, V]) Entries() []Entry[K, V] {
	var out []Entry[K, V]
	r.trie.ForEach(func(e Entry[K, V]) {
		if r.inRange(e.Key) {
			out = append(out, e)
		}
	})
	return out
}

// PrefixView is a live submap of every entry whose key has a given
// prefix. Bounds are derived per spec.md §4.8 and recomputed lazily
// whenever the trie's mod_count has advanced since the last
// computation. Implements spec.md §4.9.
type PrefixView[K any, V any] struct {
	trie         *Trie[K, V]
	key          K
	offsetInBits int
	lengthInBits int
	lastModCount uint64
	empty        bool
	from         *K
	to           *K
}

func (t *Trie[K, V]) newPrefixView(k K, offsetInBits, lengthInBits int) *PrefixView[K, V] {
	pv := &PrefixView[K, V]{trie: t, key: k, offsetInBits: offsetInBits, lengthInBits: lengthInBits}
	pv.recompute()
	return pv
}

func (pv *PrefixView[K, V]) recompute() {
	pv.lastModCount = pv.trie.modCount
	pv.from = nil
	pv.to = nil
	pv.empty = false

	if pv.lengthInBits == 0 {
		return
	}

	var firstMatch, lastMatch *node[K, V]
	pv.trie.traverseInOrder(func(n *node[K, V]) bool {
		if pv.trie.analyzer.IsPrefix(pv.key, pv.offsetInBits, pv.lengthInBits, n.key) {
			if firstMatch == nil {
				firstMatch = n
			}
			lastMatch = n
		}
		return true
	})

	if firstMatch == nil {
		pv.empty = true
		return
	}
	if prev, ok := pv.trie.previousEntry(firstMatch); ok {
		k := prev.key
		pv.from = &k
	}
	if next, ok := pv.trie.nextEntry(lastMatch); ok {
		k := next.key
		pv.to = &k
	}
}

func (pv *PrefixView[K, V]) ensureFresh() {
	if pv.trie.modCount != pv.lastModCount {
		pv.recompute()
	}
}

func (pv *PrefixView[K, V]) inRange(k K) bool {
	pv.ensureFresh()
	if pv.lengthInBits == 0 {
		return true
	}
	if pv.empty {
		return false
	}
	cmp := pv.trie.analyzer.Compare
	if pv.from != nil && cmp(k, *pv.from) <= 0 {
		return false
	}
	if pv.to != nil && cmp(k, *pv.to) >= 0 {
		return false
	}
	return true
}

// Get returns the value for k if k matches the prefix and is stored.
func (pv *PrefixView[K, V]) Get(k K) (V, bool) {
	var zero V
	if !pv.inRange(k) {
		return zero, false
	}
	return pv.trie.Get(k)
}

// Put stores (k, v), failing with OutOfRange if k does not match the
// prefix.
func (pv *PrefixView[K, V]) Put(k K, v V) (V, bool, error) {
	var zero V
	if !pv.inRange(k) {
		return zero, false, newErr(OutOfRange, "PrefixView.Put")
	}
	old, had := pv.trie.Put(k, v)
	return old, had, nil
}

// ContainsKey reports whether k matches the prefix and is stored.
func (pv *PrefixView[K, V]) ContainsKey(k K) bool {
	return pv.inRange(k) && pv.trie.ContainsKey(k)
}

// Remove deletes k if it matches the prefix.
func (pv *PrefixView[K, V]) Remove(k K) (V, bool) {
	var zero V
	if !pv.inRange(k) {
		return zero, false
	}
	return pv.trie.Remove(k)
}

// Entries returns every entry currently matching the prefix, in order.
func (pv *PrefixView[K, V]) Entries() []Entry[K, V] {
	pv.ensureFresh()
	var out []Entry[K, V]
	pv.trie.ForEach(func(e Entry[K, V]) {
		if pv.inRange(e.Key) {
			out = append(out, e)
		}
	})
	return out
}

// IsEmpty reports whether the prefix currently matches nothing.
func (pv *PrefixView[K, V]) IsEmpty() bool {
	pv.ensureFresh()
	return pv.empty && pv.lengthInBits != 0
}
