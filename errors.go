package httpwire

// ParseError is the error type returned by Execute. It is a small set of
// stable, documented codes rather than a wrapped/decorated error chain.
// Execute resets the parser before returning a non-zero code, so the
// parser's exposed state afterwards is its initial state and does not
// show where parsing failed (see SPEC_FULL.md §7).
type ParseError int16

// Error codes. Values are part of the public contract: do not renumber.
const (
	ErrOK                  ParseError = 0
	ErrBadParserType       ParseError = 2
	ErrBadState            ParseError = 3
	ErrBadPathCharacter    ParseError = 4
	ErrBadHTTPVersionHead  ParseError = 5
	ErrBadHTTPVersionMajor ParseError = 6
	ErrBadHTTPVersionMinor ParseError = 7
	ErrBadHeaderToken      ParseError = 8
	ErrBadContentLength    ParseError = 9
	ErrBadChunkSize        ParseError = 10
	ErrBadDataAfterChunk   ParseError = 11
	ErrBadStatusCode       ParseError = 12
	ErrBadMethod           ParseError = 100
	// PBufferOverflow is returned when a single token (method, path,
	// header field or header value) would exceed HTTPMaxHeaderSize.
	PBufferOverflow ParseError = 1000
	// ErrHostAbort is returned when a Settings callback returns nonzero
	// (spec.md §5/§7's "host abort" taxonomy member, distinct from the
	// numbered BAD_* wire-malformation codes).
	ErrHostAbort ParseError = -1
)

var errStr = map[ParseError]string{
	ErrOK:                  "ok",
	ErrBadParserType:       "invalid parser type",
	ErrBadState:            "invalid parser state",
	ErrBadPathCharacter:    "invalid character in request path",
	ErrBadHTTPVersionHead:  "invalid HTTP version prefix",
	ErrBadHTTPVersionMajor: "invalid HTTP major version",
	ErrBadHTTPVersionMinor: "invalid HTTP minor version",
	ErrBadHeaderToken:      "invalid header token",
	ErrBadContentLength:    "invalid or overflowing Content-Length",
	ErrBadChunkSize:        "invalid or overflowing chunk size",
	ErrBadDataAfterChunk:   "expected CRLF after chunk data",
	ErrBadStatusCode:       "invalid or overflowing status code",
	ErrBadMethod:           "invalid request method",
	PBufferOverflow:        "token exceeds max header size",
	ErrHostAbort:           "callback aborted parsing",
}

// String implements fmt.Stringer.
func (e ParseError) String() string {
	if s, ok := errStr[e]; ok {
		return s
	}
	return "unknown parse error"
}

// Error implements the standard error interface so ParseError can be
// compared with errors.Is/As by hosts that wrap it, even though the
// parser itself never wraps or decorates it.
func (e ParseError) Error() string {
	return e.String()
}
