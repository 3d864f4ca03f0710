// Package lz4block implements an LZ4 block-format decompressor: given a
// compressed block and the size the caller expects it to expand to, it
// reconstructs the original bytes.
//
// The package intentionally does not implement compression, LZ4 frame
// (container) format, or multi-block streaming with shared state; those
// are left to whatever framing layer sits above a single block.
package lz4block

import (
	"encoding/binary"

	"github.com/bitforge-dev/lz4block/internal/block"
)

// Sink is a pre-sized output buffer with a write cursor. Callers
// construct one over a buffer they own and pass it to DecompressInto or
// DecompressIntoWithDict.
type Sink = block.Sink

// NewSink wraps buf for decoding into, starting at position 0.
func NewSink(buf []byte) *Sink { return block.NewSink(buf) }

// Re-exported error values and types so callers can use errors.Is/As
// without importing the internal package.
var (
	ErrExpectedAnotherByte = block.ErrExpectedAnotherByte
	ErrLiteralOutOfBounds  = block.ErrLiteralOutOfBounds
	ErrOffsetOutOfBounds   = block.ErrOffsetOutOfBounds
	ErrLSICOverflow        = block.ErrLSICOverflow
)

// OutputTooSmallError is returned when decoding would write past the end
// of the supplied sink.
type OutputTooSmallError = block.OutputTooSmallError

// UncompressedSizeDiffersError is returned by the size-checked convenience
// wrappers when the decoded length does not match the expected size.
type UncompressedSizeDiffersError = block.UncompressedSizeDiffersError

// DecompressInto decompresses input into sink and returns the number of
// bytes written during this call.
func DecompressInto(input []byte, sink *Sink) (int, error) {
	return block.DecodeChecked(input, sink, nil, false)
}

// DecompressIntoWithDict is like DecompressInto, but resolves match
// offsets that reach before the start of sink's current output against
// extDict, an external dictionary logically prepended to the output.
func DecompressIntoWithDict(input []byte, sink *Sink, extDict []byte) (int, error) {
	return block.DecodeChecked(input, sink, extDict, true)
}

// Decompress allocates a buffer of uncompressedSize bytes and decompresses
// input into it.
func Decompress(input []byte, uncompressedSize int) ([]byte, error) {
	return decompress(input, uncompressedSize, nil, false)
}

// DecompressWithDict is like Decompress, using extDict to resolve matches
// that reach before the start of the block.
func DecompressWithDict(input []byte, uncompressedSize int, extDict []byte) ([]byte, error) {
	return decompress(input, uncompressedSize, extDict, true)
}

func decompress(input []byte, uncompressedSize int, extDict []byte, useDict bool) ([]byte, error) {
	out := make([]byte, uncompressedSize)
	sink := block.NewSink(out)
	n, err := block.DecodeChecked(input, sink, extDict, useDict)
	if err != nil {
		return nil, err
	}
	if n != uncompressedSize {
		return nil, &block.UncompressedSizeDiffersError{Expected: uncompressedSize, Actual: n}
	}
	return out, nil
}

// ReadUncompressedSizePrefix reads a 4-byte little-endian uncompressed
// size from the front of input and returns it along with the remaining
// bytes. Framing formats that prepend a size header use this to recover
// (size, rest) before calling Decompress.
func ReadUncompressedSizePrefix(input []byte) (size int, rest []byte, err error) {
	if len(input) < 4 {
		return 0, nil, ErrExpectedAnotherByte
	}
	return int(binary.LittleEndian.Uint32(input)), input[4:], nil
}

// DecompressSizePrepended decompresses input, whose first 4 bytes are a
// little-endian uncompressed size, as produced by a compressor's
// size-prepending convenience wrapper.
func DecompressSizePrepended(input []byte) ([]byte, error) {
	size, rest, err := ReadUncompressedSizePrefix(input)
	if err != nil {
		return nil, err
	}
	return Decompress(rest, size)
}

// DecompressSizePrependedWithDict is like DecompressSizePrepended, using
// extDict to resolve matches that reach before the start of the block.
func DecompressSizePrependedWithDict(input []byte, extDict []byte) ([]byte, error) {
	size, rest, err := ReadUncompressedSizePrefix(input)
	if err != nil {
		return nil, err
	}
	return DecompressWithDict(rest, size, extDict)
}
