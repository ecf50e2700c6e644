package hufftree

import (
	"io"

	"github.com/icza/bitio"
)

// BitReader is the input half of the bit stream.  ReadBits returns the next n
// bits, first bit most significant.  It returns io.EOF (or
// io.ErrUnexpectedEOF) when fewer than n bits remain.
//
// *bitio.Reader satisfies this interface.
//
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the output half of the bit stream.  WriteBits writes the low n
// bits of r, most significant first.
//
// *bitio.Writer satisfies this interface.
//
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// countingWriter tallies the bits that pass through it.
type countingWriter struct {
	w    BitWriter
	bits int64
}

func (cw *countingWriter) WriteBits(r uint64, n uint8) error {
	err := cw.w.WriteBits(r, n)
	if err == nil {
		cw.bits += int64(n)
	}
	return err
}

// countingReader tallies the bits that pass through it.
type countingReader struct {
	r    BitReader
	bits int64
}

func (cr *countingReader) ReadBits(n uint8) (uint64, error) {
	u, err := cr.r.ReadBits(n)
	if err == nil {
		cr.bits += int64(n)
	}
	return u, err
}

// byteCounter tallies the bytes that pass through it.
type byteCounter struct {
	w     io.Writer
	bytes int64
}

func (bc *byteCounter) Write(p []byte) (int, error) {
	n, err := bc.w.Write(p)
	bc.bytes += int64(n)
	return n, err
}

var (
	_ BitWriter = (*countingWriter)(nil)
	_ BitReader = (*countingReader)(nil)
	_ io.Writer = (*byteCounter)(nil)
)
