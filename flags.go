package httpwire

// pFlags packs the parser's per-message boolean state into bit flags, the
// same way the teacher packs header-presence bits into HdrFlags
// (parse_headers.go). The wire-visible behavior doesn't depend on the
// packing -- it would be equally correct as five separate bools -- but a
// single word resets in one assignment on message-complete, which matches
// how the teacher resets HdrFlags with a single `*f = 0`.
type pFlags uint8

const (
	fChunked pFlags = 1 << iota
	fConnectionKeepAlive
	fConnectionClose
	fSkipBody
	// fContentLengthSeen distinguishes "no Content-Length header was
	// present" from "Content-Length: 0": message_needs_eof (spec.md
	// §4.2.5) treats the former as EOF-delimited and the latter as a
	// definite zero-length body.
	fContentLengthSeen
)

func (f *pFlags) reset() {
	*f = 0
}

func (f *pFlags) set(bit pFlags) {
	*f |= bit
}

func (f *pFlags) clear(bit pFlags) {
	*f &^= bit
}

func (f pFlags) test(bit pFlags) bool {
	return f&bit != 0
}
