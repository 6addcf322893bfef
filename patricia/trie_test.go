package patricia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testAnalyzer struct{}

const testBitsPerElement = 8

func (testAnalyzer) LengthInBits(key string) int { return len(key) * testBitsPerElement }
func (testAnalyzer) BitsPerElement() int          { return testBitsPerElement }

func (testAnalyzer) IsBitSet(key string, bitIndex, lengthInBits int) bool {
	if bitIndex >= lengthInBits {
		return false
	}
	elem := bitIndex / testBitsPerElement
	bitInElem := bitIndex % testBitsPerElement
	return key[elem]&(1<<(testBitsPerElement-1-bitInElem)) != 0
}

func (a testAnalyzer) BitIndex(keyA string, offsetA, lengthA int, keyB string, offsetB, lengthB int) int {
	maxLen := lengthA
	if lengthB > maxLen {
		maxLen = lengthB
	}
	allZero := true
	for i := 0; i < maxLen; i++ {
		bitA := a.IsBitSet(keyA, offsetA+i, offsetA+lengthA)
		bitB := a.IsBitSet(keyB, offsetB+i, offsetB+lengthB)
		if bitA != bitB {
			return offsetA + i
		}
		if bitA {
			allZero = false
		}
	}
	if allZero {
		return NullBitKey
	}
	if lengthA == lengthB {
		return EqualBitKey
	}
	minLen := lengthA
	if lengthB < minLen {
		minLen = lengthB
	}
	return offsetA + minLen
}

func (testAnalyzer) IsPrefix(prefix string, offset, length int, key string) bool {
	if len(key)*testBitsPerElement < offset+length {
		return false
	}
	a := testAnalyzer{}
	for i := offset; i < offset+length; i++ {
		if a.IsBitSet(prefix, i, len(prefix)*testBitsPerElement) != a.IsBitSet(key, i, len(key)*testBitsPerElement) {
			return false
		}
	}
	return true
}

func (testAnalyzer) Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func newTestTrie() *Trie[string, int] {
	return New[string, int](testAnalyzer{})
}

func TestPutGetBasic(t *testing.T) {
	trie := newTestTrie()

	_, had := trie.Put("ABC", 1)
	assert.False(t, had)
	_, had = trie.Put("ABD", 2)
	assert.False(t, had)

	v, ok := trie.Get("ABC")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = trie.Get("ABD")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = trie.Get("ABE")
	assert.False(t, ok)

	old, had := trie.Put("ABC", 99)
	assert.True(t, had)
	assert.Equal(t, 1, old)
	v, _ = trie.Get("ABC")
	assert.Equal(t, 99, v)

	assert.Equal(t, 2, trie.Size())
}

func TestZeroLengthKey(t *testing.T) {
	trie := newTestTrie()

	_, ok := trie.Get("")
	assert.False(t, ok)

	trie.Put("", 7)
	v, ok := trie.Get("")
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	trie.Put("a", 1)
	trie.Put("b", 2)

	first, err := trie.FirstKey()
	assert.NoError(t, err)
	assert.Equal(t, "", first)
}

func TestRemove(t *testing.T) {
	trie := newTestTrie()
	trie.Put("ABC", 1)
	trie.Put("ABD", 2)
	trie.Put("AB", 3)

	old, ok := trie.Remove("ABD")
	assert.True(t, ok)
	assert.Equal(t, 2, old)
	assert.Equal(t, 2, trie.Size())

	_, ok = trie.Get("ABD")
	assert.False(t, ok)

	v, ok := trie.Get("ABC")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = trie.Get("AB")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = trie.Remove("nope")
	assert.False(t, ok)
}

func TestOrderedTraversalInvariant(t *testing.T) {
	trie := newTestTrie()
	words := []string{"LimeWire", "Lime", "LimeRadio", "Zebra", "Apple", "A"}
	for _, w := range words {
		trie.Put(w, len(w))
	}

	var seen []string
	trie.ForEach(func(e Entry[string, int]) {
		seen = append(seen, e.Key)
	})

	assert.Equal(t, len(words), len(seen))
	for i := 1; i < len(seen); i++ {
		assert.True(t, seen[i-1] < seen[i], "not sorted at %d: %s >= %s", i, seen[i-1], seen[i])
	}
}

func TestClearResetsToEmpty(t *testing.T) {
	trie := newTestTrie()
	trie.Put("x", 1)
	trie.Put("y", 2)
	assert.Equal(t, 2, trie.Size())

	trie.Clear()
	assert.Equal(t, 0, trie.Size())
	assert.True(t, trie.IsEmpty())
	_, ok := trie.Get("x")
	assert.False(t, ok)

	trie.Put("x", 99)
	v, ok := trie.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestModCountIncrementsOnMutation(t *testing.T) {
	trie := newTestTrie()
	start := trie.ModCount()
	trie.Put("a", 1)
	assert.Equal(t, start+1, trie.ModCount())
	trie.Put("a", 2)
	assert.Equal(t, start+2, trie.ModCount())
	trie.Remove("a")
	assert.Equal(t, start+3, trie.ModCount())
}
