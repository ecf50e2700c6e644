// Package hufftree implements a two-pass Huffman compressor whose output
// carries its own code tree.  The compressed stream is a 32-bit magic number,
// the Huffman tree in preorder, and the coded body terminated by a pseudo-EOF
// symbol.
//
// The codes are not canonical: the tree is shipped verbatim, so any
// tie-breaking rule would do, but BuildTree pins one so that output is
// reproducible.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
