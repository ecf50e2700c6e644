package hufftree

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest Code that can be represented.
const MaxCodeSize = 64

// Code represents a sequence of bits, i.e. the path from the root of a Tree
// to one of its leaves.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits is the first bit, which is also the order in which
	// WriteBits emits them.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns hc extended by one bit.  A zero bit means "go left".
func (hc Code) Append(bit uint64) Code {
	return MakeCode(hc.Size+1, (hc.Bits<<1)|(bit&1))
}

// HasPrefix returns true if prefix is a prefix of hc.  Every Code has the
// empty Code as a prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
