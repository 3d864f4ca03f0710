package block

// copyMatch materializes a match of matchLength bytes starting offset
// bytes behind the current cursor. It assumes offset and matchLength have
// already been validated against the dictionary (offset <= sink.Pos())
// and that the caller has checked sink.Pos()+matchLength <=
// sink.Capacity() when running in checked mode.
//
// fast selects the unconditional 18-byte overcopy used by the decode
// loop's hot path, where the caller has already checked that the overcopy
// stays within the sink (sink.Pos()+18 <= sink.Capacity()). Outside the hot
// path, fast is false and the copier instead chooses between a chunked
// 16-byte overcopy and an exact-sized copy depending on how much slack
// capacity gives it.
func copyMatch(sink *Sink, offset, matchLength int, fast bool) error {
	start := sink.pos - offset
	if start < 0 {
		return ErrOffsetOutOfBounds
	}
	if offset >= matchLength {
		copyNonOverlapping(sink, start, matchLength, fast)
		return nil
	}
	copyOverlapping(sink, start, offset, matchLength)
	return nil
}

// copyNonOverlapping handles the case offset >= matchLength, so the real
// matchLength bytes being copied never read from a position this call has
// itself written.
func copyNonOverlapping(sink *Sink, start, matchLength int, fast bool) {
	pos := sink.pos
	outputEnd := pos + matchLength
	buf := sink.buf

	switch {
	case fast:
		// Caller guarantees pos+18 <= capacity.
		copy(buf[pos:pos+18], buf[start:start+18])
	case outputEnd+15 <= len(buf):
		// Enough slack to overcopy in 16-byte chunks; the final chunk
		// may write past outputEnd, which is harmless padding.
		src, dst := start, pos
		end := start + matchLength
		for src < end {
			copy(buf[dst:dst+16], buf[src:src+16])
			src += 16
			dst += 16
		}
	default:
		copy(buf[pos:outputEnd], buf[start:start+matchLength])
	}
	sink.pos = outputEnd
}

// copyOverlapping handles offset < matchLength, so later bytes of the
// match must observe bytes written by earlier iterations of this same
// copy. offset == 1 degenerates to a single-byte run fill; any other
// offset needs a sequential byte-by-byte copy.
func copyOverlapping(sink *Sink, start, offset, matchLength int) {
	if offset == 1 {
		sink.Fill(sink.buf[start], matchLength)
		return
	}
	buf := sink.buf
	pos := sink.pos
	for i := 0; i < matchLength; i++ {
		buf[pos+i] = buf[start+i]
	}
	sink.pos = pos + matchLength
}
