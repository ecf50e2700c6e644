package hufftree

import (
	"fmt"
	"strconv"
)

// Symbol represents a symbol in the compressor's alphabet.  Values 0 through
// 255 are byte values; EOF marks the end of the coded body.
type Symbol int32

const (
	// EOF is the pseudo-EOF symbol.  It occurs exactly once in every
	// compressed body.
	EOF = Symbol(256)

	// NumSymbols is the size of the alphabet, including EOF.
	NumSymbols = 257

	// SymbolBits is the width of a symbol value in the tree header.  Eight
	// bits are not enough, because EOF must be representable.
	SymbolBits = 9
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true if s is a member of the alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s < NumSymbols
}

// String returns "EOF" for the pseudo-EOF symbol and the decimal value
// otherwise.
func (s Symbol) String() string {
	if s == EOF {
		return "EOF"
	}
	return strconv.FormatInt(int64(s), 10)
}

var _ fmt.Stringer = Symbol(0)
