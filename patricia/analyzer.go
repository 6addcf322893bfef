// Package patricia implements a PATRICIA trie: a compressed binary radix
// tree used as a sorted associative container keyed by arbitrary
// bit-addressable values.
package patricia

// Sentinel bit indices returned by KeyAnalyzer.BitIndex.
const (
	// NullBitKey indicates both compared bit ranges are all-zero.
	NullBitKey = -1
	// EqualBitKey indicates the compared bit ranges are bit-identical.
	EqualBitKey = -2
)

// KeyAnalyzer is the capability the trie consults for every key-level
// operation: bit length, indexed bit read, bit-difference index, prefix
// test, and total order. Implementations live outside the core (see the
// analyzer subpackage) and are injected at trie construction.
type KeyAnalyzer[K any] interface {
	// LengthInBits returns the total bit length of key.
	LengthInBits(key K) int

	// BitsPerElement returns the width, in bits, of one element of a key
	// treated as a sequence of fixed-width elements (e.g. characters).
	// GetPrefixedByElements and GetPrefixedByElementsOffset scale their
	// element counts by this value. Nothing in this module checks that a
	// bit offset or length is a multiple of it, and no IllegalArgument is
	// raised for one that is not.
	BitsPerElement() int

	// IsBitSet reports the value of the bit at bitIndex. Bits at or past
	// lengthInBits read as 0.
	IsBitSet(key K, bitIndex, lengthInBits int) bool

	// BitIndex returns the index of the first bit at which the two bit
	// ranges [offsetA, offsetA+lengthA) of keyA and [offsetB,
	// offsetB+lengthB) of keyB disagree, or NullBitKey if both ranges
	// are entirely zero, or EqualBitKey if the ranges are bit-identical.
	BitIndex(keyA K, offsetA, lengthA int, keyB K, offsetB, lengthB int) int

	// IsPrefix reports whether the bit range [offset, offset+length) of
	// prefix is a bitwise prefix of key.
	IsPrefix(prefix K, offset, length int, key K) bool

	// Compare returns -1, 0, or +1 giving the total order between a and
	// b, consistent with the lexicographic bit order.
	Compare(a, b K) int
}
