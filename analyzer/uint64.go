package analyzer

import "github.com/flocode/diypatricia/patricia"

// Uint64KeyAnalyzer treats a uint64 as a single 64-bit, big-endian-order
// element: bit 0 is the most significant bit. Useful for numeric indices
// and as the oracle-comparison key type against a google/btree reference
// implementation.
type Uint64KeyAnalyzer struct{}

const uint64BitsPerElement = 64

func (Uint64KeyAnalyzer) LengthInBits(key uint64) int { return uint64BitsPerElement }

func (Uint64KeyAnalyzer) BitsPerElement() int { return uint64BitsPerElement }

func (Uint64KeyAnalyzer) IsBitSet(key uint64, bitIndex, lengthInBits int) bool {
	if bitIndex >= lengthInBits {
		return false
	}
	return key&(1<<(uint64BitsPerElement-1-uint(bitIndex))) != 0
}

func (a Uint64KeyAnalyzer) BitIndex(keyA uint64, offsetA, lengthA int, keyB uint64, offsetB, lengthB int) int {
	return bitIndexGeneric(a, keyA, offsetA, lengthA, keyB, offsetB, lengthB)
}

func (a Uint64KeyAnalyzer) IsPrefix(prefix uint64, offset, length int, key uint64) bool {
	return isPrefixGeneric(a, prefix, offset, length, key)
}

func (Uint64KeyAnalyzer) Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var _ patricia.KeyAnalyzer[uint64] = Uint64KeyAnalyzer{}
