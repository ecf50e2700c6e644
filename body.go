package hufftree

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// EncodeBody reads r until end of stream, writing the Code of each byte, and
// then writes the Code of EOF.
//
// Every byte read must have a Code in table.  If it doesn't, the input has
// changed since the table was computed, and EncodeBody returns an error.
//
func EncodeBody(w BitWriter, r io.ByteReader, table *CodeTable) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("hufftree: reading input: %w", err)
		}
		hc, ok := table.Lookup(Symbol(b))
		if !ok {
			return fmt.Errorf("hufftree: byte %d has no code; input changed between passes", b)
		}
		if err := writeCode(w, hc); err != nil {
			return err
		}
	}

	hc, ok := table.Lookup(EOF)
	assert.Assertf(ok, "code table has no EOF code")
	return writeCode(w, hc)
}

func writeCode(w BitWriter, hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
		return fmt.Errorf("hufftree: writing body: %w", err)
	}
	return nil
}

// DecodeBody walks t one bit at a time, writing the byte at each leaf it
// reaches, until it reaches the EOF leaf.  It returns an error wrapping
// ErrMalformedBody if r runs out of bits first.
//
// A tree consisting only of the EOF leaf decodes an empty body without
// reading any bits.
//
func DecodeBody(w io.ByteWriter, r BitReader, t *Tree) error {
	root := &t.nodes[t.root]
	if root.isLeaf() {
		assert.Assertf(root.symbol == EOF, "single-leaf tree holds %v, not EOF", root.symbol)
		return nil
	}

	cursor := root
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			if isEndOfData(err) {
				return fmt.Errorf("%w: unexpected end of stream before EOF symbol", ErrMalformedBody)
			}
			return fmt.Errorf("hufftree: reading body: %w", err)
		}

		if bit == 0 {
			cursor = &t.nodes[cursor.left]
		} else {
			cursor = &t.nodes[cursor.right]
		}
		if !cursor.isLeaf() {
			continue
		}

		if cursor.symbol == EOF {
			return nil
		}
		if err := w.WriteByte(byte(cursor.symbol)); err != nil {
			return fmt.Errorf("hufftree: writing output: %w", err)
		}
		cursor = root
	}
}
