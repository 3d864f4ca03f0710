package block

import "math"

// readLSIC reads a linear small integer code starting at *cursor: bytes
// are summed and consumed until one is read that is not 0xFF, which is
// included in the sum and terminates the run.
//
// For example, 255, 255, 255, 4 decodes to 255+255+255+4 = 769.
func readLSIC(input []byte, cursor *int) (uint32, error) {
	var n uint64
	for {
		if *cursor >= len(input) {
			return 0, ErrExpectedAnotherByte
		}
		extra := input[*cursor]
		*cursor++
		n += uint64(extra)
		if n > math.MaxUint32 {
			return 0, ErrLSICOverflow
		}
		if extra != 0xFF {
			break
		}
	}
	return uint32(n), nil
}

// readU16LE reads a little-endian 16-bit integer starting at *cursor and
// advances the cursor by 2.
func readU16LE(input []byte, cursor *int) (uint16, error) {
	if *cursor+2 > len(input) {
		return 0, ErrExpectedAnotherByte
	}
	v := uint16(input[*cursor]) | uint16(input[*cursor+1])<<8
	*cursor += 2
	return v, nil
}
