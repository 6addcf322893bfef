package analyzer

import (
	"net/netip"

	"github.com/flocode/diypatricia/patricia"
)

// PrefixKeyAnalyzer treats a netip.Prefix as a bit-addressable key over
// its address's 16-byte (IPv4-mapped-IPv6) representation, restricted to
// the prefix's declared bit length. This lets the generic, bit-at-a-time
// PATRICIA trie serve the same routing-table / CIDR-set workload the
// bart family of tries hard-codes around a fixed stride-8 representation,
// without hard-coding IP addresses into the core.
type PrefixKeyAnalyzer struct{}

const prefixBitsPerElement = 1

// v4Offset is where an IPv4 address's bits begin within As16's 16-byte,
// IPv4-mapped-IPv6 layout.
const v4Offset = 96

func prefixBitOffset(p netip.Prefix) int {
	if p.Addr().Is4() {
		return v4Offset
	}
	return 0
}

func (PrefixKeyAnalyzer) LengthInBits(key netip.Prefix) int {
	return key.Bits()
}

func (PrefixKeyAnalyzer) BitsPerElement() int { return prefixBitsPerElement }

func (PrefixKeyAnalyzer) IsBitSet(key netip.Prefix, bitIndex, lengthInBits int) bool {
	if bitIndex >= lengthInBits {
		return false
	}
	addr := key.Addr().As16()
	abs := prefixBitOffset(key) + bitIndex
	byteIdx := abs / 8
	bitInByte := abs % 8
	return addr[byteIdx]&(1<<(7-bitInByte)) != 0
}

func (a PrefixKeyAnalyzer) BitIndex(keyA netip.Prefix, offsetA, lengthA int, keyB netip.Prefix, offsetB, lengthB int) int {
	return bitIndexGeneric(a, keyA, offsetA, lengthA, keyB, offsetB, lengthB)
}

func (a PrefixKeyAnalyzer) IsPrefix(prefix netip.Prefix, offset, length int, key netip.Prefix) bool {
	return isPrefixGeneric(a, prefix, offset, length, key)
}

// Compare orders prefixes by address bits first, then by prefix length
// (a shorter, less specific prefix sorts before a longer one sharing the
// same address).
func (PrefixKeyAnalyzer) Compare(a, b netip.Prefix) int {
	if c := a.Addr().Compare(b.Addr()); c != 0 {
		return c
	}
	switch {
	case a.Bits() < b.Bits():
		return -1
	case a.Bits() > b.Bits():
		return 1
	default:
		return 0
	}
}

var _ patricia.KeyAnalyzer[netip.Prefix] = PrefixKeyAnalyzer{}
