package patricia

// GetPrefixedBy returns a live view over every entry whose key has k as
// a prefix (the entirety of k). Implements spec.md §4.8/§6.
func (t *Trie[K, V]) GetPrefixedBy(k K) *PrefixView[K, V] {
	lenBits := t.analyzer.LengthInBits(k)
	return t.newPrefixView(k, 0, lenBits)
}

// GetPrefixedByElements restricts the prefix to the first length
// elements of k (element size per the analyzer's BitsPerElement).
func (t *Trie[K, V]) GetPrefixedByElements(k K, length int) *PrefixView[K, V] {
	return t.GetPrefixedByElementsOffset(k, 0, length)
}

// GetPrefixedByElementsOffset restricts the prefix to length elements
// of k starting at element offset.
func (t *Trie[K, V]) GetPrefixedByElementsOffset(k K, offset, length int) *PrefixView[K, V] {
	perElem := t.analyzer.BitsPerElement()
	return t.GetPrefixedByBitsOffset(k, offset*perElem, length*perElem)
}

// GetPrefixedByBits restricts the prefix to the first lengthInBits bits
// of k.
func (t *Trie[K, V]) GetPrefixedByBits(k K, lengthInBits int) *PrefixView[K, V] {
	return t.newPrefixView(k, 0, lengthInBits)
}

// GetPrefixedByBitsOffset restricts the prefix to lengthInBits bits of
// k starting at bit offset offsetInBits.
func (t *Trie[K, V]) GetPrefixedByBitsOffset(k K, offsetInBits, lengthInBits int) *PrefixView[K, V] {
	return t.newPrefixView(k, offsetInBits, lengthInBits)
}
