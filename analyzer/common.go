package analyzer

import "github.com/flocode/diypatricia/patricia"

// bitReader is the minimal surface every analyzer in this package needs
// in order to share bitIndexGeneric/isPrefixGeneric: just enough to read
// bits and know a key's declared length. Each analyzer re-exposes its
// own LengthInBits/IsBitSet directly (required by patricia.KeyAnalyzer
// anyway) and routes BitIndex/IsPrefix through these shared helpers so
// the bit-level algorithm is written once.
type bitReader[K any] interface {
	LengthInBits(K) int
	IsBitSet(K, int, int) bool
}

// bitIndexGeneric implements the bit_index contract shared by every
// analyzer in this package (spec.md §4.1): the index of the first
// disagreeing bit, NullBitKey if the entire compared range is zero on
// both sides, or EqualBitKey if the ranges are bit-identical.
func bitIndexGeneric[K any, A bitReader[K]](a A, keyA K, offsetA, lengthA int, keyB K, offsetB, lengthB int) int {
	endA := offsetA + lengthA
	endB := offsetB + lengthB
	maxLen := lengthA
	if lengthB > maxLen {
		maxLen = lengthB
	}

	allZero := true
	for i := 0; i < maxLen; i++ {
		bitA := a.IsBitSet(keyA, offsetA+i, endA)
		bitB := a.IsBitSet(keyB, offsetB+i, endB)
		if bitA != bitB {
			return offsetA + i
		}
		if bitA {
			allZero = false
		}
	}
	if allZero {
		return patricia.NullBitKey
	}
	if lengthA == lengthB {
		return patricia.EqualBitKey
	}
	minLen := lengthA
	if lengthB < minLen {
		minLen = lengthB
	}
	return offsetA + minLen
}

// isPrefixGeneric reports whether the bit range [offset, offset+length)
// of prefix matches key at the same bit positions.
func isPrefixGeneric[K any, A bitReader[K]](a A, prefix K, offset, length int, key K) bool {
	prefixLen := a.LengthInBits(prefix)
	keyLen := a.LengthInBits(key)
	end := offset + length
	if keyLen < end {
		return false
	}
	for i := offset; i < end; i++ {
		if a.IsBitSet(prefix, i, prefixLen) != a.IsBitSet(key, i, keyLen) {
			return false
		}
	}
	return true
}
