package patricia

import (
	"fmt"
	"testing"

	radix "github.com/armon/go-radix"
)

func genWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word-%06d", i)
	}
	return words
}

func BenchmarkPut(b *testing.B) {
	words := genWords(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trie := newTestTrie()
		for _, w := range words {
			trie.Put(w, 1)
		}
	}
}

// BenchmarkArmonRadixInsert is the baseline this package's Put is
// measured against: armon/go-radix is the teacher's closest in-pack
// peer (a compressed radix tree over string keys, same shape of
// workload, different encoding strategy).
func BenchmarkArmonRadixInsert(b *testing.B) {
	words := genWords(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := radix.New()
		for _, w := range words {
			tree.Insert(w, 1)
		}
	}
}
