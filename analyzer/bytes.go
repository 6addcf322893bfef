package analyzer

import "github.com/flocode/diypatricia/patricia"

// ByteArrayKeyAnalyzer treats a []byte as a sequence of 8-bit elements.
type ByteArrayKeyAnalyzer struct{}

const byteBitsPerElement = 8

func (ByteArrayKeyAnalyzer) LengthInBits(key []byte) int {
	return len(key) * byteBitsPerElement
}

func (ByteArrayKeyAnalyzer) BitsPerElement() int { return byteBitsPerElement }

func (ByteArrayKeyAnalyzer) IsBitSet(key []byte, bitIndex, lengthInBits int) bool {
	if bitIndex >= lengthInBits {
		return false
	}
	elem := bitIndex / byteBitsPerElement
	if elem >= len(key) {
		return false
	}
	bitInElem := bitIndex % byteBitsPerElement
	return key[elem]&(1<<(byteBitsPerElement-1-bitInElem)) != 0
}

func (a ByteArrayKeyAnalyzer) BitIndex(keyA []byte, offsetA, lengthA int, keyB []byte, offsetB, lengthB int) int {
	return bitIndexGeneric(a, keyA, offsetA, lengthA, keyB, offsetB, lengthB)
}

func (a ByteArrayKeyAnalyzer) IsPrefix(prefix []byte, offset, length int, key []byte) bool {
	return isPrefixGeneric(a, prefix, offset, length, key)
}

func (ByteArrayKeyAnalyzer) Compare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

var _ patricia.KeyAnalyzer[[]byte] = ByteArrayKeyAnalyzer{}
