package block

// minMatch is the floor of any encoded match length: LZ4 never encodes a
// match shorter than 4 bytes, since anything shorter would cost more to
// encode than to store as literals.
const minMatch = 4

// doesTokenFit reports whether both nibbles of token are below 15, i.e.
// neither the literal length nor the match length bias needs an LSIC
// extension. Tokens that fit are eligible for the decode loop's hot path.
func doesTokenFit(token byte) bool {
	return token&0x0F != 0x0F && token&0xF0 != 0xF0
}

// decodeOptions bundles the per-call toggles: whether an external
// dictionary participates in offset resolution, and whether
// output-capacity checks are enforced.
type decodeOptions struct {
	dict    []byte
	useDict bool
	checked bool
}

// decode drives the token/literal/match state machine: expectToken ->
// readLiteral -> (exit | readMatch -> expectToken). It returns the number
// of bytes written to sink during this call.
func decode(input []byte, sink *Sink, opts decodeOptions) (int, error) {
	inputCursor := 0
	initialPos := sink.Pos()

	safeInput := len(input) - 18 // 16-byte literal read + 2-byte offset
	if safeInput < 0 {
		safeInput = 0
	}
	safeOutput := sink.Capacity() - 34 // 16-byte literal write + 18-byte match write
	if safeOutput < 0 {
		safeOutput = 0
	}

	for {
		if inputCursor >= len(input) {
			return 0, ErrExpectedAnotherByte
		}
		token := input[inputCursor]
		inputCursor++

		// Hot-loop gate: taken when the token carries both lengths
		// without an LSIC extension and we are far enough from both ends
		// to absorb the fixed-width overcopies below. The strict "<" on
		// safeOutput (rather than "<=") keeps the gate safe even when a
		// small capacity saturates the subtraction to 0.
		if doesTokenFit(token) && inputCursor <= safeInput && sink.Pos() < safeOutput {
			literalLength := int(token >> 4)
			if inputCursor+literalLength > len(input) {
				return 0, ErrLiteralOutOfBounds
			}

			// The literal is at most 14 bytes; copying 16 is safe here
			// because both the input and the sink have >=16 bytes of
			// slack by construction of safeInput/safeOutput.
			pos := sink.Pos()
			copy(sink.buf[pos:pos+16], input[inputCursor:inputCursor+16])
			sink.SetPos(pos + literalLength)
			inputCursor += literalLength

			offset, err := readU16LE(input, &inputCursor)
			if err != nil {
				return 0, err
			}
			if offset == 0 {
				return 0, ErrOffsetOutOfBounds
			}
			matchLength := minMatch + int(token&0x0F)

			if err := resolveMatch(sink, opts, int(offset), &matchLength); err != nil {
				return 0, err
			}
			if matchLength == 0 {
				continue
			}
			// A partial dictionary splice may have advanced the cursor past
			// the slack the gate guaranteed, so the 18-byte overcopy is
			// used only while it still fits in the sink.
			fast := int(offset) >= matchLength && sink.Pos()+18 <= sink.Capacity()
			if err := copyMatch(sink, int(offset), matchLength, fast); err != nil {
				return 0, err
			}
			continue
		}

		// Slow path: literal and/or match length may carry an LSIC
		// extension, and output bounds are checked explicitly rather
		// than relying on the hot-loop's precomputed slack.
		literalLength := int(token >> 4)
		if literalLength == 0x0F {
			extra, err := readLSIC(input, &inputCursor)
			if err != nil {
				return 0, err
			}
			literalLength += int(extra)
		}
		if literalLength != 0 {
			if inputCursor+literalLength > len(input) {
				return 0, ErrLiteralOutOfBounds
			}
			if opts.checked && sink.Pos()+literalLength > sink.Capacity() {
				return 0, &OutputTooSmallError{Expected: sink.Pos() + literalLength, Actual: sink.Capacity()}
			}
			sink.Extend(input[inputCursor : inputCursor+literalLength])
			inputCursor += literalLength
		}

		// A block ends with a trailing literal-only sequence: once the
		// input is exhausted right after a literal copy, decoding is
		// complete. This is the only valid termination.
		if inputCursor >= len(input) {
			break
		}

		offset, err := readU16LE(input, &inputCursor)
		if err != nil {
			return 0, err
		}
		if offset == 0 {
			return 0, ErrOffsetOutOfBounds
		}

		matchLength := minMatch + int(token&0x0F)
		if token&0x0F == 0x0F {
			extra, err := readLSIC(input, &inputCursor)
			if err != nil {
				return 0, err
			}
			matchLength += int(extra)
		}

		if opts.checked && sink.Pos()+matchLength > sink.Capacity() {
			return 0, &OutputTooSmallError{Expected: sink.Pos() + matchLength, Actual: sink.Capacity()}
		}

		if err := resolveMatch(sink, opts, int(offset), &matchLength); err != nil {
			return 0, err
		}
		if matchLength == 0 {
			continue
		}
		if err := copyMatch(sink, int(offset), matchLength, false); err != nil {
			return 0, err
		}
	}

	return sink.Pos() - initialPos, nil
}

// resolveMatch applies the dictionary splice when the offset reaches
// before the start of the current output. On a full splice it
// sets *matchLength to 0 as a signal to the caller that nothing more
// needs copying from the live output; otherwise it reduces *matchLength
// by the number of bytes already spliced so the caller continues the
// match at the same offset, now entirely within the current output (the
// geometry still lines up: Pos() has advanced by exactly the spliced
// amount).
func resolveMatch(sink *Sink, opts decodeOptions, offset int, matchLength *int) error {
	if !opts.useDict || offset <= sink.Pos() {
		return nil
	}
	copied, err := copyFromDict(sink, opts.dict, offset, *matchLength)
	if err != nil {
		return err
	}
	*matchLength -= copied
	return nil
}
