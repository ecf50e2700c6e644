package hufftree

import (
	"fmt"
)

// Header bits.  An internal node is a single 0 bit followed by its left and
// right subtrees; a leaf is a single 1 bit followed by its symbol in
// SymbolBits bits.
const (
	headerInternal = 0
	headerLeaf     = 1
)

// WriteHeader serializes the shape of t in preorder.
func WriteHeader(w BitWriter, t *Tree) error {
	stack := make([]int32, 0, MaxCodeSize)
	stack = append(stack, t.root)
	for len(stack) != 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[index]
		if n.isLeaf() {
			if err := w.WriteBits(headerLeaf, 1); err != nil {
				return fmt.Errorf("hufftree: writing header: %w", err)
			}
			if err := w.WriteBits(uint64(n.symbol), SymbolBits); err != nil {
				return fmt.Errorf("hufftree: writing header: %w", err)
			}
			continue
		}

		if err := w.WriteBits(headerInternal, 1); err != nil {
			return fmt.Errorf("hufftree: writing header: %w", err)
		}
		stack = append(stack, n.right, n.left)
	}
	return nil
}

// ReadHeader parses a tree written by WriteHeader.  It returns an error
// wrapping ErrMalformedHeader if the stream ends early or if the tree it
// describes could not have come from BuildTree: a leaf value outside the
// alphabet, a symbol appearing twice, or no EOF leaf.
func ReadHeader(r BitReader) (*Tree, error) {
	t := &Tree{root: noChild}

	var seen [NumSymbols]bool
	var hasEOF bool

	// pending holds internal nodes whose right child has not been read yet.
	pending := make([]int32, 0, MaxCodeSize)

	attach := func(index int32) {
		if len(pending) == 0 {
			t.root = index
			return
		}
		parent := &t.nodes[pending[len(pending)-1]]
		if parent.left == noChild {
			parent.left = index
			return
		}
		parent.right = index
		pending = pending[:len(pending)-1]
	}

	for {
		if len(t.nodes) >= 2*NumSymbols-1 {
			return nil, fmt.Errorf("%w: more than %d nodes", ErrMalformedHeader, 2*NumSymbols-1)
		}

		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, headerReadError(err)
		}

		if bit == headerInternal {
			t.nodes = append(t.nodes, node{symbol: InvalidSymbol, left: noChild, right: noChild})
			index := int32(len(t.nodes) - 1)
			attach(index)
			pending = append(pending, index)
			continue
		}

		value, err := r.ReadBits(SymbolBits)
		if err != nil {
			return nil, headerReadError(err)
		}
		symbol := Symbol(value)
		if !symbol.IsValid() {
			return nil, fmt.Errorf("%w: leaf value %d out of range", ErrMalformedHeader, value)
		}
		if seen[symbol] {
			return nil, fmt.Errorf("%w: symbol %v appears twice", ErrMalformedHeader, symbol)
		}
		seen[symbol] = true
		if symbol == EOF {
			hasEOF = true
		}
		attach(t.addLeaf(symbol, 0))

		if len(pending) == 0 {
			break
		}
	}

	if !hasEOF {
		return nil, fmt.Errorf("%w: no EOF leaf", ErrMalformedHeader)
	}
	return t, nil
}

func headerReadError(err error) error {
	if isEndOfData(err) {
		return fmt.Errorf("%w: unexpected end of stream", ErrMalformedHeader)
	}
	return fmt.Errorf("hufftree: reading header: %w", err)
}
