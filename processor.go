package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Magic identifies a compressed stream.  It is the first 32 bits of every
// stream written by Compress.
const Magic = uint32(0xface8201)

// MagicBits is the width of Magic on the wire.
const MagicBits = 32

// Logger receives a summary of each Compress and Decompress call.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(format string, v ...any)  {}
func (nopLogger) Errorf(format string, v ...any) {}

// Stats describes one Compress or Decompress call.
type Stats struct {
	// PlainBytes is the number of uncompressed bytes.
	PlainBytes int64

	// PackedBytes is the number of compressed bytes, including the magic
	// number and the padding in the final byte.
	PackedBytes int64

	// HeaderBits is the size of the tree header, excluding the magic
	// number.
	HeaderBits int64

	// BodyBits is the size of the coded body, including the EOF code.
	BodyBits int64
}

// Ratio returns PackedBytes / PlainBytes, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.PlainBytes == 0 {
		return 0
	}
	return float64(s.PackedBytes) / float64(s.PlainBytes)
}

// String returns a one-line summary of s.
func (s Stats) String() string {
	return fmt.Sprintf("%d bytes <-> %d bytes (header %d bits, body %d bits)",
		s.PlainBytes, s.PackedBytes, s.HeaderBits, s.BodyBits)
}

var _ fmt.Stringer = Stats{}

// Processor compresses and decompresses streams.  The zero value is ready to
// use and logs nothing.
type Processor struct {
	Logger Logger
}

func (p Processor) logger() Logger {
	if p.Logger == nil {
		return nopLogger{}
	}
	return p.Logger
}

// Compress reads in twice, once to count byte frequencies and once, after
// seeking back to the start, to encode it.  Both passes must see the same
// bytes.
func (p Processor) Compress(in io.ReadSeeker, out io.Writer) (Stats, error) {
	stats, err := p.compress(in, out)
	if err != nil {
		p.logger().Errorf("compress: %v", err)
		return stats, err
	}
	p.logger().Infof("compress: %v", stats)
	return stats, nil
}

func (p Processor) compress(in io.ReadSeeker, out io.Writer) (Stats, error) {
	var stats Stats

	counts, err := CountFrequencies(bitio.NewReader(in))
	if err != nil {
		return stats, err
	}
	stats.PlainBytes = int64(counts.Total() - counts[EOF])

	tree := BuildTree(&counts)
	table, err := tree.Codes()
	if err != nil {
		return stats, err
	}

	bc := &byteCounter{w: out}
	bw := bitio.NewWriter(bc)
	cw := &countingWriter{w: bw}

	if err := cw.WriteBits(uint64(Magic), MagicBits); err != nil {
		return stats, fmt.Errorf("hufftree: writing magic: %w", err)
	}
	if err := WriteHeader(cw, tree); err != nil {
		return stats, err
	}
	stats.HeaderBits = cw.bits - MagicBits

	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return stats, fmt.Errorf("hufftree: rewinding input: %w", err)
	}
	if err := EncodeBody(cw, bitio.NewReader(in), table); err != nil {
		return stats, err
	}
	stats.BodyBits = cw.bits - MagicBits - stats.HeaderBits

	if err := bw.Close(); err != nil {
		return stats, fmt.Errorf("hufftree: flushing output: %w", err)
	}
	stats.PackedBytes = bc.bytes
	return stats, nil
}

// Decompress decodes a stream written by Compress.  Nothing is written to out
// unless the whole stream decodes: the errors wrapping ErrInvalidFormat,
// ErrMalformedHeader and ErrMalformedBody all leave out untouched.
//
// Any bits after the EOF code are ignored.
//
func (p Processor) Decompress(in io.Reader, out io.Writer) (Stats, error) {
	stats, err := p.decompress(in, out)
	if err != nil {
		p.logger().Errorf("decompress: %v", err)
		return stats, err
	}
	p.logger().Infof("decompress: %v", stats)
	return stats, nil
}

func (p Processor) decompress(in io.Reader, out io.Writer) (Stats, error) {
	var stats Stats

	cr := &countingReader{r: bitio.NewReader(in)}

	magic, err := cr.ReadBits(MagicBits)
	if err != nil {
		if isEndOfData(err) {
			return stats, fmt.Errorf("%w: stream shorter than magic number", ErrInvalidFormat)
		}
		return stats, fmt.Errorf("hufftree: reading magic: %w", err)
	}
	if uint32(magic) != Magic {
		return stats, fmt.Errorf("%w: magic number %#08x, expected %#08x", ErrInvalidFormat, magic, Magic)
	}

	tree, err := ReadHeader(cr)
	if err != nil {
		return stats, err
	}
	stats.HeaderBits = cr.bits - MagicBits

	var buf bytes.Buffer
	if err := DecodeBody(&buf, cr, tree); err != nil {
		return stats, err
	}
	stats.BodyBits = cr.bits - MagicBits - stats.HeaderBits
	stats.PackedBytes = (cr.bits + 7) / 8

	n, err := out.Write(buf.Bytes())
	stats.PlainBytes = int64(n)
	if err != nil {
		return stats, fmt.Errorf("hufftree: writing output: %w", err)
	}
	return stats, nil
}

// Compress is Processor{}.Compress.
func Compress(in io.ReadSeeker, out io.Writer) (Stats, error) {
	return Processor{}.Compress(in, out)
}

// Decompress is Processor{}.Decompress.
func Decompress(in io.Reader, out io.Writer) (Stats, error) {
	return Processor{}.Decompress(in, out)
}
