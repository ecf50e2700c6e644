package hufftree

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeBody(t *testing.T) {
	counts := makeTestCounts()
	table, err := BuildTree(&counts).Codes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rec bitRecorder
	if err := EncodeBody(&rec, bytes.NewReader([]byte{5, 0, 2, 4}), table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expect := "0" + "11001" + "100" + "111" + "11000"
	if actual := rec.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestEncodeBody_UnknownByte(t *testing.T) {
	counts := makeTestCounts()
	table, err := BuildTree(&counts).Codes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rec bitRecorder
	if err := EncodeBody(&rec, bytes.NewReader([]byte{5, 200}), table); err == nil {
		t.Errorf("expected an error for a byte with no code")
	}
}

func TestEncodeBody_SingleLeaf(t *testing.T) {
	var counts Counts
	counts[EOF] = 1
	table, err := BuildTree(&counts).Codes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rec bitRecorder
	if err := EncodeBody(&rec, bytes.NewReader(nil), table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Len() != 0 {
		t.Errorf("expected an empty body, got %q", rec.String())
	}
}

func TestDecodeBody(t *testing.T) {
	counts := makeTestCounts()
	tree := BuildTree(&counts)

	type testRow struct {
		name   string
		bits   string
		expect []byte
	}

	testData := [...]testRow{
		{name: "eof-only", bits: "11000", expect: []byte{}},
		{name: "several", bits: "0" + "11001" + "100" + "111" + "11000", expect: []byte{5, 0, 2, 4}},
		{name: "trailing", bits: "1101" + "11000" + "0000", expect: []byte{1}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := DecodeBody(&buf, &bitString{bits: row.bits}, tree); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(row.expect, buf.Bytes()) {
				t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", row.expect, buf.Bytes())
			}
		})
	}
}

func TestDecodeBody_SingleLeaf(t *testing.T) {
	var counts Counts
	counts[EOF] = 1
	bs := &bitString{bits: "1111"}
	var buf bytes.Buffer
	if err := DecodeBody(&buf, bs, BuildTree(&counts)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 || bs.pos != 0 {
		t.Errorf("single-leaf tree decoded %d bytes from %d bits", buf.Len(), bs.pos)
	}
}

func TestDecodeBody_Truncated(t *testing.T) {
	counts := makeTestCounts()
	tree := BuildTree(&counts)

	for _, bits := range []string{"", "0", "0" + "1100", strings.Repeat("0", 100)} {
		t.Run(bits, func(t *testing.T) {
			err := DecodeBody(&bytes.Buffer{}, &bitString{bits: bits}, tree)
			if !errors.Is(err, ErrMalformedBody) {
				t.Errorf("expected ErrMalformedBody, got %v", err)
			}
		})
	}
}
