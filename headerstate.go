package httpwire

import "github.com/intuitivelabs/bytescase"

// hState is the header-recognition sub-state (spec.md §4.2.3): it lets the
// parser identify Content-Length, Transfer-Encoding and Connection while
// the header name or value is still streaming in, without a hash-map
// lookup. This mirrors the teacher's philosophy of resolving well-known
// names/values through small hand-written matchers (parse_method.go's
// hashMthName, parse_tr_enc.go's TrEncResolve) but, because the spec calls
// for byte-at-a-time incremental matching rather than a lookup over a
// complete slice, the matcher here tracks a running index instead of
// hashing a finished token. headername.go's non-hot-path, informational
// header classifier works on a complete name with a linear scan instead.
type hState uint8

const (
	hGeneral hState = iota
	hMatchingCon
	hMatchingContentLength
	hMatchingConnection
	hMatchingTransferEncoding
	hContentLength
	hConnection
	hTransferEncoding
	hMatchingConnectionKeepAlive
	hMatchingConnectionClose
	hMatchingTransferEncodingChunked
)

const (
	nameContentLength    = "content-length"
	nameConnection       = "connection"
	nameTransferEncoding = "transfer-encoding"
	valKeepAlive         = "keep-alive"
	valClose             = "close"
	valChunked           = "chunked"
)

// headerMatch holds the running state of the header sub-machine for the
// header currently being parsed. It is reset at HEADER_FIELD_START.
type headerMatch struct {
	state hState
	index int
}

func (h *headerMatch) reset() {
	h.state = hGeneral
	h.index = 0
}

// feedName advances the sub-machine by one header-name byte. It never
// fails: an unrecognized or mismatching name simply reverts to hGeneral
// and parsing of the field continues normally.
func (h *headerMatch) feedName(c byte) {
	lc := bytescase.ByteToLower(c)
	switch h.state {
	case hGeneral:
		switch lc {
		case 'c':
			h.state = hMatchingCon
			h.index = 1
		case 't':
			h.state = hMatchingTransferEncoding
			h.index = 1
		}
	case hMatchingCon:
		// matching the shared "con" prefix of content-length/connection
		if h.index < 3 {
			if lc == nameConnection[h.index] {
				h.index++
			} else {
				h.state = hGeneral
			}
			return
		}
		// "con" fully matched (index==3): the 4th byte disambiguates
		switch lc {
		case 't':
			h.state = hMatchingContentLength
			h.index = 4
		case 'n':
			h.state = hMatchingConnection
			h.index = 4
		default:
			h.state = hGeneral
		}
	case hMatchingContentLength:
		h.matchPrefix(lc, nameContentLength, hContentLength)
	case hMatchingConnection:
		h.matchPrefix(lc, nameConnection, hConnection)
	case hMatchingTransferEncoding:
		h.matchPrefix(lc, nameTransferEncoding, hTransferEncoding)
	default:
		// already a terminal/value-phase state reached on a name byte:
		// can't happen given the FSM driving this, but be defensive.
		h.state = hGeneral
	}
}

// matchPrefix advances a straight prefix match against target, landing on
// done when the full name has been consumed.
func (h *headerMatch) matchPrefix(lc byte, target string, done hState) {
	if h.index >= len(target) {
		h.state = hGeneral
		return
	}
	if lc != target[h.index] {
		h.state = hGeneral
		return
	}
	h.index++
	if h.index == len(target) {
		h.state = done
	}
}

// nameDone is called once the header name is terminated by ':'. It leaves
// the terminal hContentLength/hConnection/hTransferEncoding state intact
// (so the value phase knows which header this is) and resets anything
// that didn't reach a terminal name state back to hGeneral.
func (h *headerMatch) nameDone() {
	switch h.state {
	case hContentLength, hConnection, hTransferEncoding:
		// keep as-is; value phase begins next.
	default:
		h.state = hGeneral
	}
	h.index = 0
}

// feedValue advances the sub-machine by one header-value byte once the
// name matched a tracked header. It reports the two value-phase effects
// the parser needs to act on: a decoded Content-Length digit, or a
// connection/transfer-encoding flag becoming fully matched.
type valueEffect uint8

const (
	effectNone valueEffect = iota
	effectContentLengthDigit
	effectConnectionKeepAlive
	effectConnectionClose
	effectTransferEncodingChunked
	effectContentLengthOverflow
)

func (h *headerMatch) feedValue(c byte) valueEffect {
	lc := bytescase.ByteToLower(c)
	switch h.state {
	case hContentLength:
		return effectContentLengthDigit
	case hConnection:
		switch lc {
		case 'k':
			h.state = hMatchingConnectionKeepAlive
			h.index = 1
		case 'c':
			h.state = hMatchingConnectionClose
			h.index = 1
		default:
			h.state = hGeneral
		}
	case hTransferEncoding:
		if lc == 'c' {
			h.state = hMatchingTransferEncodingChunked
			h.index = 1
		} else {
			h.state = hGeneral
		}
	case hMatchingConnectionKeepAlive:
		if h.index < len(valKeepAlive) && lc == valKeepAlive[h.index] {
			h.index++
			if h.index == len(valKeepAlive) {
				return effectConnectionKeepAlive
			}
		} else {
			h.state = hGeneral
		}
	case hMatchingConnectionClose:
		if h.index < len(valClose) && lc == valClose[h.index] {
			h.index++
			if h.index == len(valClose) {
				return effectConnectionClose
			}
		} else {
			h.state = hGeneral
		}
	case hMatchingTransferEncodingChunked:
		if h.index < len(valChunked) && lc == valChunked[h.index] {
			h.index++
			if h.index == len(valChunked) {
				return effectTransferEncodingChunked
			}
		} else {
			h.state = hGeneral
		}
	}
	return effectNone
}
