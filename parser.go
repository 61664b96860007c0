package httpwire

// Kind selects whether a Parser reads request-lines or status-lines
// (spec.md §3, "parser kind (request or response)").
type Kind uint8

const (
	KindRequest Kind = iota
	KindResponse
)

// Parser holds the in-flight state of one HTTP/1.x message (spec.md §3).
// It is not goroutine-safe: a host must not call Execute from more than
// one goroutine at a time on the same instance (spec.md §5).
type Parser struct {
	kind  Kind
	state state
	hdr   headerMatch
	flags pFlags

	contentLength uint64
	httpMajor     uint16
	httpMinor     uint16
	statusCode    uint16

	// bytesRead counts bytes written into the current token since the
	// last reset, reused across HEADER_VALUE (to detect leading
	// whitespace) and CHUNK_COMPLETE (to count the expected CR, LF
	// pair), the way the teacher reuses a single offset field across
	// related parse phases instead of adding a field per phase.
	bytesRead int
	// trailerLineLen counts non-CRLF bytes on the current line while
	// consuming-and-discarding chunk trailers (CHUNK_TRAILER); zero at
	// the start of a line, a blank line (LF with trailerLineLen == 0)
	// ends the trailer section.
	trailerLineLen int

	scratch scratchBuf

	// Data is opaque host context, preserved across resets the same way
	// spec.md §9 requires app_data to survive message-complete.
	Data any
}

// NewParser allocates and initializes a Parser of the given kind.
func NewParser(kind Kind) *Parser {
	p := &Parser{}
	p.Init(kind)
	return p
}

// Init (re-)initializes p for a new connection, zeroing all per-message
// state except Data (spec.md §4.2 "init(parser, kind)").
func (p *Parser) Init(kind Kind) {
	data := p.Data
	*p = Parser{}
	p.Data = data
	p.kind = kind
	if kind == KindResponse {
		p.state = sRespStart
	} else {
		p.state = sReqStart
	}
}

// reset re-initializes p for the next message on the same connection,
// preserving kind and Data (spec.md §3 lifecycle, §9 "preserving app_data
// across reset").
func (p *Parser) reset() {
	p.Init(p.kind)
}

// Close releases parser resources. In Go there is nothing to free
// explicitly; it exists for symmetry with hosts that pool Parsers and
// want a uniform acquire/release lifecycle (spec.md §4.2 "free(parser)").
func (p *Parser) Close() {}

// Kind reports whether p parses requests or responses.
func (p *Parser) Kind() Kind { return p.kind }

// ContentLength reports the remaining unread body bytes for the message
// currently in flight (0 once the body has been fully delivered).
func (p *Parser) ContentLength() uint64 { return p.contentLength }

// StatusCode reports the parsed response status code (0 for requests, or
// before RESP_STATUS has completed).
func (p *Parser) StatusCode() uint16 { return p.statusCode }

// HTTPVersion reports the parsed major/minor version numbers.
func (p *Parser) HTTPVersion() (major, minor uint16) {
	return p.httpMajor, p.httpMinor
}

const maxUint64 = ^uint64(0)

// Execute feeds data to p, invoking s's callbacks as boundaries are
// recognized, and returns ErrOK on clean consumption or the first error
// encountered (spec.md §4.2 "execute"). On error the parser is reset
// before Execute returns, so the caller need not reinitialize it.
//
// BODY and CHUNK_DATA are special-cased to consume a run of bytes in one
// step rather than one byte at a time, so on_body callbacks receive
// whole slices (spec.md §4.2.2: "emit on_body with up to content_length
// bytes from the current input slice") and pipelined messages in the
// same buffer are handled without an extra Execute call.
func (p *Parser) Execute(s *Settings, data []byte) ParseError {
	if s == nil {
		s = &Settings{}
	}
	i := 0
	for i < len(data) {
		if p.state == sBodyComplete {
			if err := p.completeMessage(s); err != ErrOK {
				return err
			}
		}
		switch p.state {
		case sBody, sChunkData:
			avail := len(data) - i
			n := avail
			if uint64(n) > p.contentLength {
				n = int(p.contentLength)
			}
			if n > 0 {
				if err := p.emitBytes(s.OnBody, data[i:i+n]); err != ErrOK {
					p.reset()
					return err
				}
				p.contentLength -= uint64(n)
				i += n
			}
			if p.contentLength == 0 {
				if p.state == sBody {
					p.state = sBodyComplete
				} else {
					p.state = sChunkComplete
					p.bytesRead = 0
				}
			}
		default:
			if err := p.step(s, data[i]); err != ErrOK {
				p.reset()
				return err
			}
			i++
		}
	}
	if p.state == sBodyComplete {
		if err := p.completeMessage(s); err != ErrOK {
			return err
		}
	}
	return ErrOK
}

// completeMessage fires on_message_complete and resets p for the next
// message (spec.md §4.2.2 "BODY_COMPLETE"). The reset happens either way
// -- a host-aborted message still leaves the parser ready for the next
// one, matching Execute's general "errors reset the parser" contract.
func (p *Parser) completeMessage(s *Settings) ParseError {
	err := p.emitSimple(s.OnMessageComplete)
	p.reset()
	return err
}

// step advances the state machine by exactly one byte. Empty transitions
// (REQ_START/RESP_START skipping leading CRLF, falling into the next
// state without consuming the byte again from Execute) are implemented
// with a local retry rather than recursion, mirroring how a `goto`-based
// C state machine re-enters the switch on the same byte.
func (p *Parser) step(s *Settings, c byte) ParseError {
	for {
		switch p.state {
		case sReqStart:
			if c == '\r' || c == '\n' {
				return ErrOK
			}
			p.state = sReqMethod
			continue

		case sReqMethod:
			if isAlpha(c) {
				if !p.scratch.append(c) {
					return PBufferOverflow
				}
				return ErrOK
			}
			if c == ' ' {
				if err := p.emitBytes(s.OnReqMethod, p.scratch.bytes()); err != ErrOK {
					return err
				}
				p.scratch.reset()
				p.state = sReqPath
				return ErrOK
			}
			return ErrBadMethod

		case sReqPath:
			if isURLChar(c) {
				if !p.scratch.append(c) {
					return PBufferOverflow
				}
				return ErrOK
			}
			if c == ' ' {
				if err := p.emitBytes(s.OnReqPath, p.scratch.bytes()); err != ErrOK {
					return err
				}
				p.scratch.reset()
				p.state = sHTTPVerHead
				return ErrOK
			}
			return ErrBadPathCharacter

		case sRespStart:
			if c == '\r' || c == '\n' {
				return ErrOK
			}
			p.state = sHTTPVerHead
			continue

		case sHTTPVerHead:
			if c == '/' {
				p.state = sHTTPVerMajor
				return ErrOK
			}
			if isAlpha(c) {
				return ErrOK
			}
			return ErrBadHTTPVersionHead

		case sHTTPVerMajor:
			if c == '.' {
				p.state = sHTTPVerMinor
				return ErrOK
			}
			if isNum(c) {
				d := uint16(c - '0')
				x := p.httpMajor
				t := x*10 + d
				if t < x || t > 999 {
					return ErrBadHTTPVersionMajor
				}
				p.httpMajor = t
				return ErrOK
			}
			return ErrBadHTTPVersionMajor

		case sHTTPVerMinor:
			if isNum(c) {
				d := uint16(c - '0')
				x := p.httpMinor
				t := x*10 + d
				if t < x || t > 999 {
					return ErrBadHTTPVersionMinor
				}
				p.httpMinor = t
				return ErrOK
			}
			if p.kind == KindRequest {
				if c == '\r' {
					return ErrOK
				}
				if c == '\n' {
					if err := p.emitSimple(s.OnHTTPVersion); err != ErrOK {
						return err
					}
					p.state = sHeaderFieldStart
					return ErrOK
				}
				return ErrBadHTTPVersionMinor
			}
			if c == ' ' {
				if err := p.emitSimple(s.OnHTTPVersion); err != ErrOK {
					return err
				}
				p.state = sRespStatus
				return ErrOK
			}
			return ErrBadHTTPVersionMinor

		case sRespStatus:
			if isNum(c) {
				d := uint16(c - '0')
				x := p.statusCode
				t := x*10 + d
				if t < x || t == 65535 {
					return ErrBadStatusCode
				}
				p.statusCode = t
				return ErrOK
			}
			if c == ' ' {
				if err := p.emitSimple(s.OnStatus); err != ErrOK {
					return err
				}
				p.state = sRespReasonPhrase
				return ErrOK
			}
			return ErrBadStatusCode

		case sRespReasonPhrase:
			if c == '\n' {
				p.state = sHeaderFieldStart
			}
			return ErrOK

		case sHeaderFieldStart:
			if c == '\r' {
				return ErrOK
			}
			if c == '\n' {
				return p.routeBody(s)
			}
			if tokenChar(c) == 0 {
				return ErrBadHeaderToken
			}
			p.hdr.reset()
			p.hdr.feedName(c)
			if !p.scratch.append(c) {
				return PBufferOverflow
			}
			p.state = sHeaderField
			return ErrOK

		case sHeaderField:
			if c == ':' {
				if err := p.emitBytes(s.OnHeaderField, p.scratch.bytes()); err != ErrOK {
					return err
				}
				p.scratch.reset()
				p.hdr.nameDone()
				p.bytesRead = 0
				p.state = sHeaderValue
				return ErrOK
			}
			if c == '\n' {
				return p.routeBody(s)
			}
			// Only checked while the sub-machine is still in its general
			// (unmatched) state, matching the reference: a byte mid-match
			// against a known header name (content-length, connection,
			// transfer-encoding) is accepted unconditionally even if a
			// mismatch sends it back to general on this same byte.
			if p.hdr.state == hGeneral && tokenChar(c) == 0 {
				return ErrBadHeaderToken
			}
			p.hdr.feedName(c)
			if !p.scratch.append(c) {
				return PBufferOverflow
			}
			return ErrOK

		case sHeaderValue:
			if p.bytesRead == 0 && (c == ' ' || c == '\t') {
				return ErrOK
			}
			if c == '\r' {
				return ErrOK
			}
			if c == '\n' {
				if err := p.emitBytes(s.OnHeaderValue, p.scratch.bytes()); err != ErrOK {
					return err
				}
				p.scratch.reset()
				p.hdr.reset()
				p.bytesRead = 0
				p.state = sHeaderFieldStart
				return ErrOK
			}
			p.bytesRead++
			if !p.scratch.append(c) {
				return PBufferOverflow
			}
			switch p.hdr.feedValue(c) {
			case effectContentLengthDigit:
				if !isNum(c) {
					return ErrBadContentLength
				}
				d := uint64(c - '0')
				x := p.contentLength
				t := x*10 + d
				if t < x || t == maxUint64 {
					return ErrBadContentLength
				}
				p.contentLength = t
				p.flags.set(fContentLengthSeen)
			case effectConnectionKeepAlive:
				p.flags.set(fConnectionKeepAlive)
			case effectConnectionClose:
				p.flags.set(fConnectionClose)
			case effectTransferEncodingChunked:
				p.flags.set(fChunked)
			}
			return ErrOK

		case sChunkSize:
			if c == '\r' {
				return ErrOK
			}
			if c == '\n' {
				return p.chunkLineDone()
			}
			if c == ';' || c == ' ' {
				p.state = sChunkParams
				return ErrOK
			}
			d := hexDigit(c)
			if d < 0 {
				return ErrBadChunkSize
			}
			x := p.contentLength
			t := x*16 + uint64(d)
			if t < x || t == maxUint64 {
				return ErrBadChunkSize
			}
			p.contentLength = t
			return ErrOK

		case sChunkParams:
			if c == '\n' {
				return p.chunkLineDone()
			}
			return ErrOK

		case sChunkComplete:
			if p.bytesRead == 0 {
				if c == '\r' {
					p.bytesRead = 1
					return ErrOK
				}
				return ErrBadDataAfterChunk
			}
			if c == '\n' {
				p.bytesRead = 0
				p.contentLength = 0
				p.state = sChunkSize
				return ErrOK
			}
			return ErrBadDataAfterChunk

		case sChunkTrailer:
			if c == '\r' {
				return ErrOK
			}
			if c == '\n' {
				if p.trailerLineLen == 0 {
					p.state = sBodyComplete
					return ErrOK
				}
				p.trailerLineLen = 0
				return ErrOK
			}
			p.trailerLineLen++
			return ErrOK

		default:
			return ErrBadState
		}
	}
}

// chunkLineDone is reached on the LF terminating either a CHUNK_SIZE or
// a CHUNK_PARAMS line: a zero size routes to trailer consumption, a
// nonzero size begins CHUNK_DATA (spec.md §4.2.2, resolved per §9's
// default of consuming-and-discarding trailers rather than surfacing
// them as headers).
func (p *Parser) chunkLineDone() ParseError {
	if p.contentLength == 0 {
		p.state = sChunkTrailer
		p.trailerLineLen = 0
	} else {
		p.state = sChunkData
	}
	return ErrOK
}

// routeBody fires on_headers_complete and transitions to the body state
// matching F_CHUNKED / content_length (spec.md §4.2.2). Responses that
// are defined to never carry a body (1xx, 204, 304, or a HEAD response
// flagged by the host via SetSkipBody) skip straight to BODY_COMPLETE
// regardless of any Content-Length/Transfer-Encoding header present,
// per RFC 7230 §3.3.3 and spec.md §4.2.5's message_needs_eof exceptions.
func (p *Parser) routeBody(s *Settings) ParseError {
	if err := p.emitSimple(s.OnHeadersComplete); err != ErrOK {
		return err
	}
	if p.kind == KindResponse && p.bodyless() {
		p.state = sBodyComplete
		return ErrOK
	}
	switch {
	case p.flags.test(fChunked):
		p.contentLength = 0
		p.state = sChunkSize
	case p.contentLength > 0:
		p.state = sBody
	default:
		p.state = sBodyComplete
	}
	return ErrOK
}

// bodyless reports whether the in-flight response is defined to carry no
// body regardless of its headers.
func (p *Parser) bodyless() bool {
	if p.flags.test(fSkipBody) {
		return true
	}
	if p.kind != KindResponse {
		return false
	}
	if p.statusCode >= 100 && p.statusCode < 200 {
		return true
	}
	return p.statusCode == 204 || p.statusCode == 304
}

// SetSkipBody tells p that the message about to be parsed carries no
// body regardless of Content-Length/Transfer-Encoding -- the case of a
// response to a HEAD request, which the parser itself has no way to
// know about (spec.md §4.2.5 lists HEAD alongside 1xx/204/304 as
// message_needs_eof exceptions; unlike those, HEAD isn't visible in the
// response's own bytes, so the host must signal it before feeding the
// response to Execute).
func (p *Parser) SetSkipBody() {
	p.flags.set(fSkipBody)
}

func (p *Parser) emitBytes(cb func(*Parser, []byte) int, b []byte) ParseError {
	if cb == nil {
		return ErrOK
	}
	if cb(p, b) != 0 {
		return ErrHostAbort
	}
	return ErrOK
}

func (p *Parser) emitSimple(cb func(*Parser) int) ParseError {
	if cb == nil {
		return ErrOK
	}
	if cb(p) != 0 {
		return ErrHostAbort
	}
	return ErrOK
}
