package patricia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixView(t *testing.T) {
	trie := newTestTrie()
	trie.Put("Lime", 1)
	trie.Put("LimeWire", 2)
	trie.Put("LimeRadio", 3)
	trie.Put("Zebra", 4)

	view := trie.GetPrefixedBy("Lime")
	entries := view.Entries()

	keys := map[string]bool{}
	for _, e := range entries {
		keys[e.Key] = true
	}
	assert.Len(t, entries, 3)
	assert.True(t, keys["Lime"])
	assert.True(t, keys["LimeWire"])
	assert.True(t, keys["LimeRadio"])
	assert.False(t, keys["Zebra"])
}

func TestPrefixViewNoMatches(t *testing.T) {
	trie := newTestTrie()
	trie.Put("Apple", 1)
	trie.Put("Banana", 2)

	view := trie.GetPrefixedBy("Lime")
	assert.True(t, view.IsEmpty())
	assert.Empty(t, view.Entries())
}

func TestPrefixViewRecomputesAfterMutation(t *testing.T) {
	trie := newTestTrie()
	trie.Put("Lime", 1)

	view := trie.GetPrefixedBy("Lime")
	assert.Len(t, view.Entries(), 1)

	trie.Put("LimeWire", 2)
	assert.Len(t, view.Entries(), 2)
}
