package block

// DecodeChecked decompresses input into sink, validating every literal
// and match write against sink's capacity. dict is consulted only when
// useDict is true; a nil/empty dict with
// useDict true behaves as if no back-reference may ever reach before the
// start of the current output.
func DecodeChecked(input []byte, sink *Sink, dict []byte, useDict bool) (int, error) {
	return decode(input, sink, decodeOptions{dict: dict, useDict: useDict, checked: true})
}

// DecodeUnchecked is like DecodeChecked but skips the slow path's output
// capacity checks, trusting the caller to have sized sink correctly. It
// is for callers that have already proven sink sizing and want to avoid
// the redundant checks on the slow path. The hot path's bounds remain
// governed by the safe-distance predicates regardless of this flag.
func DecodeUnchecked(input []byte, sink *Sink, dict []byte, useDict bool) (int, error) {
	return decode(input, sink, decodeOptions{dict: dict, useDict: useDict, checked: false})
}
