package lz4block

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/bitforge-dev/lz4block/internal/fixture"
)

func TestDecompressRoundTrip(t *testing.T) {
	plain := bytes.Repeat([]byte("hello, lz4 block format! "), 200)
	compressed := fixture.Encode(plain)

	out, err := Decompress(compressed, len(plain))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, plain) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(out), len(plain))
	}
}

func TestDecompressIntoReportsBytesWritten(t *testing.T) {
	plain := []byte("abcdefghijklmnopqrstuvwxyz")
	compressed := fixture.Encode(plain)

	out := make([]byte, len(plain))
	sink := NewSink(out)
	n, err := DecompressInto(compressed, sink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(plain) || !bytes.Equal(out, plain) {
		t.Fatalf("got n=%d out=%q, want n=%d out=%q", n, out, len(plain), plain)
	}
}

func TestDecompressSizeMismatch(t *testing.T) {
	plain := []byte("short message")
	compressed := fixture.Encode(plain)

	_, err := Decompress(compressed, len(plain)+5)
	var mismatch *UncompressedSizeDiffersError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want *UncompressedSizeDiffersError", err)
	}
	if mismatch.Expected != len(plain)+5 || mismatch.Actual != len(plain) {
		t.Fatalf("got %+v", mismatch)
	}
}

func TestDecompressWithDict(t *testing.T) {
	dict := []byte("the previous block's tail bytes go here.")
	plain := []byte("the previous block's tail bytes go here. and some new text")
	compressed := fixture.Encode(plain)

	out, err := DecompressWithDict(compressed, len(plain), dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, plain) {
		t.Fatalf("got %q, want %q", out, plain)
	}
}

func TestReadUncompressedSizePrefix(t *testing.T) {
	var buf bytes.Buffer
	var sizeBytes [4]byte
	binary.LittleEndian.PutUint32(sizeBytes[:], 42)
	buf.Write(sizeBytes[:])
	buf.WriteString("payload")

	size, rest, err := ReadUncompressedSizePrefix(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 42 || !bytes.Equal(rest, []byte("payload")) {
		t.Fatalf("got size=%d rest=%q", size, rest)
	}
}

func TestReadUncompressedSizePrefixTooShort(t *testing.T) {
	_, _, err := ReadUncompressedSizePrefix([]byte{1, 2})
	if !errors.Is(err, ErrExpectedAnotherByte) {
		t.Fatalf("got %v, want ErrExpectedAnotherByte", err)
	}
}

func TestDecompressSizePrepended(t *testing.T) {
	plain := []byte("size-prefixed payload for a single lz4 block")
	compressed := fixture.Encode(plain)

	var sizeBytes [4]byte
	binary.LittleEndian.PutUint32(sizeBytes[:], uint32(len(plain)))
	framed := append(sizeBytes[:], compressed...)

	out, err := DecompressSizePrepended(framed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, plain) {
		t.Fatalf("got %q, want %q", out, plain)
	}
}

func TestDecompressPropagatesMalformedInputErrors(t *testing.T) {
	// A token announcing 5 literal bytes, with no literal bytes after it.
	_, err := Decompress([]byte{0x50}, 5)
	if err == nil {
		t.Fatal("expected an error for truncated input")
	}
}
