// Package analyzer provides patricia.KeyAnalyzer implementations for the
// common key shapes: UTF-16-style strings, raw byte slices, fixed-width
// unsigned integers, and netip.Prefix (for CIDR-keyed tries).
package analyzer

import "github.com/flocode/diypatricia/patricia"

// StringKeyAnalyzer treats a string as a sequence of 16-bit code units,
// matching the "character-width-16" scenarios used throughout spec.md §8
// (e.g. "Lime", "LimeWire", "LimeRadio").
type StringKeyAnalyzer struct{}

const stringBitsPerElement = 16

func (StringKeyAnalyzer) LengthInBits(key string) int {
	return len([]rune(key)) * stringBitsPerElement
}

func (StringKeyAnalyzer) BitsPerElement() int { return stringBitsPerElement }

func (StringKeyAnalyzer) IsBitSet(key string, bitIndex, lengthInBits int) bool {
	if bitIndex >= lengthInBits {
		return false
	}
	runes := []rune(key)
	elem := bitIndex / stringBitsPerElement
	if elem >= len(runes) {
		return false
	}
	bitInElem := bitIndex % stringBitsPerElement
	return runes[elem]&(1<<(stringBitsPerElement-1-bitInElem)) != 0
}

func (a StringKeyAnalyzer) BitIndex(keyA string, offsetA, lengthA int, keyB string, offsetB, lengthB int) int {
	return bitIndexGeneric(a, keyA, offsetA, lengthA, keyB, offsetB, lengthB)
}

func (a StringKeyAnalyzer) IsPrefix(prefix string, offset, length int, key string) bool {
	return isPrefixGeneric(a, prefix, offset, length, key)
}

func (StringKeyAnalyzer) Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var _ patricia.KeyAnalyzer[string] = StringKeyAnalyzer{}
