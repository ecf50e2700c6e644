package hufftree

import (
	"bytes"
	"fmt"
	"io"
)

// Counts is a frequency table: the number of occurrences of each Symbol.
type Counts [NumSymbols]uint64

// CountFrequencies reads r until end of stream and returns the number of
// times each byte value occurred.  The count for EOF is always 1, even for an
// empty stream.
func CountFrequencies(r io.ByteReader) (Counts, error) {
	var counts Counts
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Counts{}, fmt.Errorf("hufftree: counting frequencies: %w", err)
		}
		counts[b]++
	}
	counts[EOF] = 1
	return counts, nil
}

// Total returns the sum of all counts, including EOF.
func (c *Counts) Total() uint64 {
	var sum uint64
	for _, n := range c {
		sum += n
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the non-zero counts to
// the given writer.
func (c *Counts) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Counts{\n")
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if n := c[symbol]; n != 0 {
			fmt.Fprintf(&buf, "\t%v = %d\n", symbol, n)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
