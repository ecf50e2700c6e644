// Command huff compresses and decompresses files.
//
// Usage:
//
//     huff [-q] compress IN OUT
//     huff [-q] decompress IN OUT
//     huff dump IN
//
// IN may be "-" for standard input and OUT may be "-" for standard output.
//
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/icza/bitio"

	"github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("q", false, "do not print statistics")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: huff [-q] compress|decompress IN OUT")
		fmt.Fprintln(stderr, "       huff dump IN")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.New(stderr, *quiet)
	proc := hufftree.Processor{Logger: log}

	var err error
	switch cmd := fs.Arg(0); {
	case cmd == "compress" && fs.NArg() == 3:
		err = withFiles(fs.Arg(1), fs.Arg(2), stdin, stdout, func(in io.ReadSeeker, out io.Writer) error {
			_, err := proc.Compress(in, out)
			return err
		})
	case cmd == "decompress" && fs.NArg() == 3:
		err = withFiles(fs.Arg(1), fs.Arg(2), stdin, stdout, func(in io.ReadSeeker, out io.Writer) error {
			_, err := proc.Decompress(in, out)
			return err
		})
	case cmd == "dump" && fs.NArg() == 2:
		err = withFiles(fs.Arg(1), "-", stdin, stdout, dump)
	default:
		fs.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "huff: %v\n", err)
		return 1
	}
	return 0
}

// dump prints the code table for the byte frequencies of in.
func dump(in io.ReadSeeker, out io.Writer) error {
	counts, err := hufftree.CountFrequencies(bitio.NewReader(in))
	if err != nil {
		return err
	}
	table, err := hufftree.BuildTree(&counts).Codes()
	if err != nil {
		return err
	}
	_, err = table.Dump(out)
	return err
}

func withFiles(inPath, outPath string, stdin io.Reader, stdout io.Writer, fn func(io.ReadSeeker, io.Writer) error) error {
	var in io.ReadSeeker
	if inPath == "-" {
		// Compression reads its input twice, and a pipe can't seek.
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
		in = bytes.NewReader(data)
	} else {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	if outPath == "-" {
		return fn(in, stdout)
	}

	// Write to a buffer first so that a failed decompression leaves no
	// partial file behind.
	var buf bytes.Buffer
	if err := fn(in, &buf); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o666)
}
