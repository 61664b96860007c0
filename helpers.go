package httpwire

// TransferEncodingChunked reports whether the in-flight (or just
// completed) message used chunked transfer coding (spec.md §4.2.5).
func (p *Parser) TransferEncodingChunked() bool {
	return p.flags.test(fChunked)
}

// MessageNeedsEOF reports whether the message body is delimited only by
// connection close, i.e. neither Content-Length nor chunked framing
// bounds it (spec.md §4.2.5). Grounded on the teacher's PMsg.BodyType()
// RFC 7230 §3.3.3 decision logic (parse_msg.go), adapted from a
// full-message BodyType enum to the single boolean this spec's data
// model calls for.
func (p *Parser) MessageNeedsEOF() bool {
	if p.kind == KindRequest {
		return false
	}
	if p.bodyless() {
		return false
	}
	if p.flags.test(fChunked) {
		return false
	}
	return !p.flags.test(fContentLengthSeen)
}

// ShouldKeepAlive reports whether the connection this message arrived on
// can be reused for another message (spec.md §4.2.5).
func (p *Parser) ShouldKeepAlive() bool {
	if p.MessageNeedsEOF() {
		return false
	}
	if p.httpMajor > 1 || (p.httpMajor == 1 && p.httpMinor >= 1) {
		return !p.flags.test(fConnectionClose)
	}
	return p.flags.test(fConnectionKeepAlive)
}
