package httpwire

// state is the parser's primary state, driving the byte-classification
// loop in Execute. See spec.md §4.2.1 for the full transition table.
type state uint8

const (
	sReqStart state = iota
	sReqMethod
	sReqPath

	sRespStart
	sRespStatus
	sRespReasonPhrase

	sHTTPVerHead
	sHTTPVerMajor
	sHTTPVerMinor

	sHeaderFieldStart
	sHeaderField
	sHeaderValue

	sBody
	sChunkSize
	sChunkParams
	sChunkData
	sChunkComplete
	sChunkTrailer
	sBodyComplete
	sMessageEnd
)

var stateNames = map[state]string{
	sReqStart:         "REQ_START",
	sReqMethod:        "REQ_METHOD",
	sReqPath:          "REQ_PATH",
	sRespStart:        "RESP_START",
	sRespStatus:       "RESP_STATUS",
	sRespReasonPhrase: "RESP_RPHRASE",
	sHTTPVerHead:      "HTTP_VER_HEAD",
	sHTTPVerMajor:     "HTTP_VER_MAJOR",
	sHTTPVerMinor:     "HTTP_VER_MINOR",
	sHeaderFieldStart: "HEADER_FIELD_START",
	sHeaderField:      "HEADER_FIELD",
	sHeaderValue:      "HEADER_VALUE",
	sBody:             "BODY",
	sChunkSize:        "CHUNK_SIZE",
	sChunkParams:      "CHUNK_PARAMS",
	sChunkData:        "CHUNK_DATA",
	sChunkComplete:    "CHUNK_COMPLETE",
	sChunkTrailer:     "CHUNK_TRAILER",
	sBodyComplete:     "BODY_COMPLETE",
	sMessageEnd:       "MESSAGE_END",
}

// String implements fmt.Stringer, mostly for test failure messages.
func (s state) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// State returns the parser's current primary state. Exposed for hosts
// that want to inspect progress (e.g. deciding whether it's safe to
// pipeline another request) without depending on unexported internals.
func (p *Parser) State() string {
	return p.state.String()
}
