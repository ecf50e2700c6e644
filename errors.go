package hufftree

import (
	"errors"
	"io"
)

var (
	// ErrInvalidFormat is returned by Decompress when the stream does not
	// start with Magic.
	ErrInvalidFormat = errors.New("hufftree: invalid format")

	// ErrMalformedHeader is returned when the tree header is truncated or
	// does not describe a usable tree.
	ErrMalformedHeader = errors.New("hufftree: malformed header")

	// ErrMalformedBody is returned when the body ends before the EOF
	// symbol has been decoded.
	ErrMalformedBody = errors.New("hufftree: malformed body")

	// ErrCodeTooLong is returned when a Tree is too deep for its paths to
	// fit in a Code.
	ErrCodeTooLong = errors.New("hufftree: code too long")
)

// isEndOfData reports whether err is the bit stream running dry, as opposed
// to a genuine I/O failure.
func isEndOfData(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
