package httpwire

import "github.com/intuitivelabs/bytescase"

// Method identifies a well-known HTTP request method. It is a
// convenience classifier for hosts that receive Settings.OnReqMethod's
// raw bytes and want an enum instead of repeated string comparison; the
// parser's hot path never needs it; REQ_METHOD accumulates any run of
// ASCII alphabetics and reports BadMethod on anything else, regardless
// of whether ClassifyMethod recognizes the result.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodGet
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodConnect
	MethodOptions
	MethodTrace
	MethodPatch
	methodCount // must be last
)

var methodNames = [methodCount][]byte{
	MethodUnknown: []byte(""),
	MethodGet:     []byte("GET"),
	MethodHead:    []byte("HEAD"),
	MethodPost:    []byte("POST"),
	MethodPut:     []byte("PUT"),
	MethodDelete:  []byte("DELETE"),
	MethodConnect: []byte("CONNECT"),
	MethodOptions: []byte("OPTIONS"),
	MethodTrace:   []byte("TRACE"),
	MethodPatch:   []byte("PATCH"),
}

// Name returns the canonical ASCII method name, or "" for MethodUnknown.
func (m Method) Name() []byte {
	if m >= methodCount {
		return methodNames[MethodUnknown]
	}
	return methodNames[m]
}

func (m Method) String() string {
	if m == MethodUnknown {
		return "UNKNOWN"
	}
	return string(m.Name())
}

// ClassifyMethod resolves a method token (as produced by a completed
// REQ_METHOD run, e.g. the bytes handed to Settings.OnReqMethod) to a
// Method, or MethodUnknown for anything not in the well-known set --
// unrecognized methods are not a parse error, the parser already
// accepted the token as a valid sequence of ASCII alphabetics.
//
// A handful of fixed names never justifies the teacher's hashed-bucket
// lookup (parse_method.go's GetMethodNo): a case-insensitive linear scan
// against methodNames is just as cheap here and reads directly, so that
// is what this non-hot-path convenience uses.
func ClassifyMethod(tok []byte) Method {
	for m := MethodGet; m < methodCount; m++ {
		if bytescase.CmpEq(tok, methodNames[m]) {
			return m
		}
	}
	return MethodUnknown
}
