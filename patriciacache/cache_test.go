package patriciacache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flocode/diypatricia/analyzer"
	"github.com/flocode/diypatricia/patricia"
)

func TestCacheHitsAndInvalidatesOnMutation(t *testing.T) {
	trie := patricia.New[string, int](analyzer.StringKeyAnalyzer{})
	trie.Put("ABC", 1)
	trie.Put("ABD", 2)

	cache, err := New(trie, 16)
	assert.NoError(t, err)

	e, ok := cache.Select("ABC")
	assert.True(t, ok)
	assert.Equal(t, "ABC", e.Key)
	assert.Equal(t, 1, cache.Len())

	// Same query again should hit the cache rather than re-walk the trie.
	e2, ok := cache.Select("ABC")
	assert.True(t, ok)
	assert.Equal(t, e.Key, e2.Key)

	trie.Put("ABE", 3)
	// Mutation invalidates the cache wholesale: the next Select purges
	// every cached query and then caches its own fresh answer.
	e3, ok := cache.Select("ABC")
	assert.True(t, ok)
	assert.Equal(t, "ABC", e3.Key)
	assert.Equal(t, 1, cache.Len())
}
