package block

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed LZ4 block input. Callers should compare
// against these with errors.Is; the decode loop never retries or recovers.
var (
	// ErrExpectedAnotherByte is returned when the input ends while reading
	// a token, an LSIC extension, a match offset, or a literal header.
	ErrExpectedAnotherByte = errors.New("lz4block: expected another byte in input")

	// ErrLiteralOutOfBounds is returned when a literal run would read past
	// the end of the input.
	ErrLiteralOutOfBounds = errors.New("lz4block: literal run extends past end of input")

	// ErrOffsetOutOfBounds is returned when a match offset is zero, or
	// reaches further back than the current output (plus dictionary, if
	// any).
	ErrOffsetOutOfBounds = errors.New("lz4block: match offset out of bounds")

	// ErrLSICOverflow is returned when an LSIC-encoded length would
	// overflow a 32-bit accumulator.
	ErrLSICOverflow = errors.New("lz4block: LSIC length overflows 32 bits")
)

// OutputTooSmallError is returned when a checked write would exceed the
// sink's capacity.
type OutputTooSmallError struct {
	Expected int
	Actual   int
}

func (e *OutputTooSmallError) Error() string {
	return fmt.Sprintf("lz4block: output too small: need %d bytes, sink has capacity %d", e.Expected, e.Actual)
}

// UncompressedSizeDiffersError is returned by the size-checked convenience
// wrappers when the number of bytes actually written does not match the
// caller-supplied expected size.
type UncompressedSizeDiffersError struct {
	Expected int
	Actual   int
}

func (e *UncompressedSizeDiffersError) Error() string {
	return fmt.Sprintf("lz4block: uncompressed size differs: expected %d, got %d", e.Expected, e.Actual)
}
