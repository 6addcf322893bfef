package patricia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectExactMatch(t *testing.T) {
	trie := newTestTrie()
	trie.Put("ABC", 1)
	trie.Put("ABD", 2)

	e, ok := trie.Select("ABC")
	assert.True(t, ok)
	assert.Equal(t, "ABC", e.Key)
}

func TestSelectXORNearest(t *testing.T) {
	trie := newTestTrie()
	trie.Put("ABC", 1)
	trie.Put("ABD", 2)

	// "ABD" differs from "ABC" only in the last bits; once ABC is removed,
	// querying with ABC should fall back to the remaining neighbor.
	_, ok := trie.Remove("ABC")
	assert.True(t, ok)

	e, ok := trie.Select("ABC")
	assert.True(t, ok)
	assert.Equal(t, "ABD", e.Key)
}

func TestSelectEmptyTrie(t *testing.T) {
	trie := newTestTrie()
	_, ok := trie.Select("anything")
	assert.False(t, ok)
}

func TestSelectWithCursorRemoveAndExit(t *testing.T) {
	trie := newTestTrie()
	trie.Put("x", 1)
	trie.Put("y", 2)

	e, ok, err := trie.SelectWithCursor("x", func(Entry[string, int]) Decision {
		return RemoveAndExitCursor
	})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", e.Key)
	assert.Equal(t, 1, trie.Size())
	assert.False(t, trie.ContainsKey("x"))
}

func TestSelectWithCursorRemoveIsUnsupported(t *testing.T) {
	trie := newTestTrie()
	trie.Put("x", 1)

	_, _, err := trie.SelectWithCursor("x", func(Entry[string, int]) Decision {
		return RemoveCursor
	})
	assert.Error(t, err)
	var patErr *Error
	assert.ErrorAs(t, err, &patErr)
	assert.Equal(t, Unsupported, patErr.Kind)
}
