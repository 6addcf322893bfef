// Package patriciasync provides a synchronized wrapper around
// patricia.Trie. The core is explicitly single-threaded (spec.md §5);
// this package is the thin outer layer that serializes every entry point
// for callers that need concurrent access, mirroring the sync.Map/
// sync.WaitGroup idioms the teacher leans on for its connection and
// session bookkeeping.
package patriciasync

import (
	"sync"

	"github.com/flocode/diypatricia/patricia"
)

// Trie serializes all access to an embedded *patricia.Trie behind an
// RWMutex: read operations take a read lock, mutating operations take a
// write lock.
type Trie[K any, V any] struct {
	mu   sync.RWMutex
	core *patricia.Trie[K, V]
}

// New builds a synchronized trie consulting analyzer for key-level
// operations.
func New[K any, V any](analyzer patricia.KeyAnalyzer[K]) *Trie[K, V] {
	return &Trie[K, V]{core: patricia.New[K, V](analyzer)}
}

func (t *Trie[K, V]) Get(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.core.Get(key)
}

func (t *Trie[K, V]) Put(key K, value V) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.core.Put(key, value)
}

func (t *Trie[K, V]) Remove(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.core.Remove(key)
}

func (t *Trie[K, V]) ContainsKey(key K) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.core.ContainsKey(key)
}

func (t *Trie[K, V]) ContainsValue(value V, eq func(a, b V) bool) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.core.ContainsValue(value, eq)
}

func (t *Trie[K, V]) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.core.Size()
}

func (t *Trie[K, V]) IsEmpty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.core.IsEmpty()
}

func (t *Trie[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.core.Clear()
}

func (t *Trie[K, V]) FirstKey() (K, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.core.FirstKey()
}

func (t *Trie[K, V]) LastKey() (K, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.core.LastKey()
}

func (t *Trie[K, V]) Select(k K) (patricia.Entry[K, V], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.core.Select(k)
}

func (t *Trie[K, V]) SelectWithCursor(k K, cursor patricia.Cursor[K, V]) (patricia.Entry[K, V], bool, error) {
	// A cursor's RemoveAndExitCursor path mutates the trie, so this needs
	// the write lock even though most calls will only read.
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.core.SelectWithCursor(k, cursor)
}

func (t *Trie[K, V]) Traverse(cursor patricia.Cursor[K, V]) (patricia.Entry[K, V], bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.core.Traverse(cursor)
}

func (t *Trie[K, V]) ForEach(fn func(patricia.Entry[K, V])) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	t.core.ForEach(fn)
}

// KeySet returns a synchronized view over the trie's keys.
func (t *Trie[K, V]) KeySet() *KeySet[K, V] { return &KeySet[K, V]{t: t} }

// Values returns a synchronized view over the trie's values.
func (t *Trie[K, V]) Values() *Values[K, V] { return &Values[K, V]{t: t} }

// EntrySet returns a synchronized view over the trie's entries.
func (t *Trie[K, V]) EntrySet() *EntrySet[K, V] { return &EntrySet[K, V]{t: t} }

// HeadMap, TailMap, and SubMap mirror patricia.Trie's range views, but
// every method on the returned RangeView continues to serialize through
// this trie's mutex.
func (t *Trie[K, V]) HeadMap(to K) *RangeView[K, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &RangeView[K, V]{t: t, core: t.core.HeadMap(to)}
}

func (t *Trie[K, V]) TailMap(from K) *RangeView[K, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &RangeView[K, V]{t: t, core: t.core.TailMap(from)}
}

func (t *Trie[K, V]) SubMap(from, to K) *RangeView[K, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &RangeView[K, V]{t: t, core: t.core.SubMap(from, to)}
}

// GetPrefixedBy returns a synchronized view over every entry whose key
// has k as a prefix.
func (t *Trie[K, V]) GetPrefixedBy(k K) *PrefixView[K, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &PrefixView[K, V]{t: t, core: t.core.GetPrefixedBy(k)}
}

// KeySet, Values, and EntrySet are thin synchronized facades; Size reads
// under the shared lock. They expose no Iterator.

type KeySet[K any, V any] struct{ t *Trie[K, V] }

func (ks *KeySet[K, V]) Size() int {
	ks.t.mu.RLock()
	defer ks.t.mu.RUnlock()
	return ks.t.core.KeySet().Size()
}

func (ks *KeySet[K, V]) Contains(k K) bool { return ks.t.ContainsKey(k) }

func (ks *KeySet[K, V]) Remove(k K) bool {
	_, ok := ks.t.Remove(k)
	return ok
}

type Values[K any, V any] struct{ t *Trie[K, V] }

func (vs *Values[K, V]) Size() int { return vs.t.Size() }

type EntrySet[K any, V any] struct{ t *Trie[K, V] }

func (es *EntrySet[K, V]) Size() int { return es.t.Size() }

// RangeView is a synchronized facade over patricia.RangeView.
type RangeView[K any, V any] struct {
	t    *Trie[K, V]
	core *patricia.RangeView[K, V]
}

func (r *RangeView[K, V]) Get(k K) (V, bool) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.core.Get(k)
}

func (r *RangeView[K, V]) Put(k K, v V) (V, bool, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	return r.core.Put(k, v)
}

func (r *RangeView[K, V]) Remove(k K) (V, bool) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	return r.core.Remove(k)
}

// FirstKey and LastKey take the write lock: a bounded view resolves its
// ends through Ceiling/Floor/Higher/Lower, which briefly insert and
// remove a probe node.
func (r *RangeView[K, V]) FirstKey() (K, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	return r.core.FirstKey()
}

func (r *RangeView[K, V]) LastKey() (K, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	return r.core.LastKey()
}

// PrefixView is a synchronized facade over patricia.PrefixView.
type PrefixView[K any, V any] struct {
	t    *Trie[K, V]
	core *patricia.PrefixView[K, V]
}

func (pv *PrefixView[K, V]) Get(k K) (V, bool) {
	pv.t.mu.RLock()
	defer pv.t.mu.RUnlock()
	return pv.core.Get(k)
}

func (pv *PrefixView[K, V]) Put(k K, v V) (V, bool, error) {
	pv.t.mu.Lock()
	defer pv.t.mu.Unlock()
	return pv.core.Put(k, v)
}

func (pv *PrefixView[K, V]) Remove(k K) (V, bool) {
	pv.t.mu.Lock()
	defer pv.t.mu.Unlock()
	return pv.core.Remove(k)
}

func (pv *PrefixView[K, V]) Entries() []patricia.Entry[K, V] {
	pv.t.mu.RLock()
	defer pv.t.mu.RUnlock()
	return pv.core.Entries()
}
