package httpwire

import "github.com/intuitivelabs/bytescase"

// HeaderName classifies a complete header name into a well-known type.
// It is a post-processing convenience for hosts handling
// Settings.OnHeaderField -- distinct from headerstate.go's hState, which
// recognizes only the three headers (Content-Length, Transfer-Encoding,
// Connection) the hot path must act on while streaming. HeaderName
// widens that set to the rest of the headers a host embedding this
// parser commonly needs to branch on, without adding any new
// h_matching_* sub-state to the streaming recognizer (see SPEC_FULL.md's
// DOMAIN STACK section for why the hot path stays pinned to the three
// named headers).
type HeaderName uint16

const (
	HeaderNone HeaderName = iota
	HeaderContentLength
	HeaderTransferEncoding
	HeaderUpgrade
	HeaderContentEncoding
	HeaderHost
	HeaderServer
	HeaderOrigin
	HeaderConnection
	HeaderSecWebSocketKey
	HeaderSecWebSocketProto
	HeaderSecWebSocketAccept
	HeaderSecWebSocketVersion
	HeaderOther // recognized as a header, but not one of the above
)

var headerNameStr = [...]string{
	HeaderNone:                "none",
	HeaderContentLength:       "Content-Length",
	HeaderTransferEncoding:    "Transfer-Encoding",
	HeaderUpgrade:             "Upgrade",
	HeaderContentEncoding:     "Content-Encoding",
	HeaderHost:                "Host",
	HeaderServer:              "Server",
	HeaderOrigin:              "Origin",
	HeaderConnection:          "Connection",
	HeaderSecWebSocketKey:     "Sec-WebSocket-Key",
	HeaderSecWebSocketProto:   "Sec-WebSocket-Protocol",
	HeaderSecWebSocketAccept:  "Sec-WebSocket-Accept",
	HeaderSecWebSocketVersion: "Sec-WebSocket-Version",
	HeaderOther:               "generic",
}

func (t HeaderName) String() string {
	if int(t) < 0 || int(t) >= len(headerNameStr) {
		return "invalid"
	}
	return headerNameStr[t]
}

type headerNameEntry struct {
	name []byte
	t    HeaderName
}

// lowercase header names, paired with their HeaderName.
var headerNameTable = [...]headerNameEntry{
	{[]byte("content-length"), HeaderContentLength},
	{[]byte("transfer-encoding"), HeaderTransferEncoding},
	{[]byte("upgrade"), HeaderUpgrade},
	{[]byte("content-encoding"), HeaderContentEncoding},
	{[]byte("host"), HeaderHost},
	{[]byte("server"), HeaderServer},
	{[]byte("connection"), HeaderConnection},
	{[]byte("sec-websocket-key"), HeaderSecWebSocketKey},
	{[]byte("sec-websocket-protocol"), HeaderSecWebSocketProto},
	{[]byte("sec-websocket-accept"), HeaderSecWebSocketAccept},
	{[]byte("sec-websocket-version"), HeaderSecWebSocketVersion},
	{[]byte("origin"), HeaderOrigin},
}

// ClassifyHeaderName resolves a complete header name to a HeaderName,
// case-insensitively. An empty name returns HeaderNone; any non-empty
// name not in the well-known set returns HeaderOther.
//
// A dozen fixed names doesn't justify the teacher's hashed-bucket lookup
// (parse_headers.go's GetHdrType); a case-insensitive linear scan over
// headerNameTable is just as cheap here and reads directly, so that is
// what this non-hot-path convenience uses.
func ClassifyHeaderName(name []byte) HeaderName {
	if len(name) == 0 {
		return HeaderNone
	}
	for _, e := range headerNameTable {
		if bytescase.CmpEq(name, e.name) {
			return e.t
		}
	}
	return HeaderOther
}
