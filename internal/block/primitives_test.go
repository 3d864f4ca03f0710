package block

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadLSICSimple(t *testing.T) {
	input := []byte{255, 255, 255, 4}
	cursor := 0
	n, err := readLSIC(input, &cursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 255+255+255+4 {
		t.Fatalf("got %d, want %d", n, 255+255+255+4)
	}
	if cursor != len(input) {
		t.Fatalf("cursor = %d, want %d", cursor, len(input))
	}
}

func TestReadLSICTruncated(t *testing.T) {
	input := []byte{255, 255}
	cursor := 0
	_, err := readLSIC(input, &cursor)
	if !errors.Is(err, ErrExpectedAnotherByte) {
		t.Fatalf("got %v, want ErrExpectedAnotherByte", err)
	}
}

func TestReadLSICOverflow(t *testing.T) {
	// The accumulator is a uint64 checked against math.MaxUint32 after
	// every byte is folded in; enough consecutive 0xFF bytes push the
	// running sum past that ceiling before any terminator is read.
	const overflowingRunLength = 16843010 // smallest N with N*255 > math.MaxUint32
	input := bytes.Repeat([]byte{0xFF}, overflowingRunLength)
	cursor := 0
	_, err := readLSIC(input, &cursor)
	if !errors.Is(err, ErrLSICOverflow) {
		t.Fatalf("got %v, want ErrLSICOverflow", err)
	}
}

func TestReadU16LE(t *testing.T) {
	input := []byte{0x34, 0x12}
	cursor := 0
	v, err := readU16LE(input, &cursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x1234 {
		t.Fatalf("got %#x, want %#x", v, 0x1234)
	}
	if cursor != 2 {
		t.Fatalf("cursor = %d, want 2", cursor)
	}
}

func TestReadU16LETruncated(t *testing.T) {
	input := []byte{0x01}
	cursor := 0
	_, err := readU16LE(input, &cursor)
	if !errors.Is(err, ErrExpectedAnotherByte) {
		t.Fatalf("got %v, want ErrExpectedAnotherByte", err)
	}
}
