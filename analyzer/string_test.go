package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flocode/diypatricia/patricia"
)

func TestStringKeyAnalyzerRoundTrip(t *testing.T) {
	trie := patricia.New[string, int](StringKeyAnalyzer{})
	trie.Put("Lime", 1)
	trie.Put("LimeWire", 2)

	v, ok := trie.Get("Lime")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	view := trie.GetPrefixedBy("Lime")
	assert.Len(t, view.Entries(), 2)
}

func TestStringKeyAnalyzerBitIndex(t *testing.T) {
	a := StringKeyAnalyzer{}
	b := a.BitIndex("AA", 0, a.LengthInBits("AA"), "AA", 0, a.LengthInBits("AA"))
	assert.Equal(t, patricia.EqualBitKey, b)

	b = a.BitIndex("", 0, 0, "", 0, 0)
	assert.Equal(t, patricia.NullBitKey, b)
}
