package httpwire

import "github.com/intuitivelabs/bytescase"

// Byte classification tables, built once at package init time the same
// way parse_method.go builds its method-name lookup table: start from a
// small declarative rule set and fill a fixed-size array, rather than
// branching on ranges at parse time.

var urlCharTable [256]bool
var alphaTable [256]bool
var numTable [256]bool
var tokenTable [256]byte // lower-cased token char, 0 if not a token char
var hexTable [256]int8   // -1 if not a hex digit, else 0..15

func init() {
	for c := 0; c < 256; c++ {
		b := byte(c)
		// IS_URL_CHAR: high-bit set (UTF-8 continuation bytes in paths),
		// or ASCII printable excluding control chars, SPACE and DEL, plus
		// the two special sentinels HT (9) and NL (12, form-feed) the
		// spec carries over from the original source's path table.
		switch {
		case b&0x80 != 0:
			urlCharTable[c] = true
		case b == 9 || b == 12:
			urlCharTable[c] = true
		case b >= 33 && b <= 126:
			urlCharTable[c] = true
		}

		if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
			alphaTable[c] = true
		}
		if b >= '0' && b <= '9' {
			numTable[c] = true
		}

		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
			tokenTable[c] = bytescase.ByteToLower(b)
		case b == '!' || b == '#' || b == '$' || b == '%' || b == '&' ||
			b == '\'' || b == '*' || b == '+' || b == '-' || b == '.' ||
			b == '^' || b == '_' || b == '`' || b == '|' || b == '~':
			tokenTable[c] = b
		case b == ' ':
			// SPACE maps to SPACE rather than 0, so the header-field
			// states accept it inside a header name.
			tokenTable[c] = ' '
		default:
			tokenTable[c] = 0
		}

		switch {
		case b >= '0' && b <= '9':
			hexTable[c] = int8(b - '0')
		case b >= 'a' && b <= 'f':
			hexTable[c] = int8(b-'a') + 10
		case b >= 'A' && b <= 'F':
			hexTable[c] = int8(b-'A') + 10
		default:
			hexTable[c] = -1
		}
	}
}

// isURLChar reports whether c is a valid byte inside a request path.
func isURLChar(c byte) bool {
	return urlCharTable[c]
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return alphaTable[c]
}

// isNum reports whether c is an ASCII digit.
func isNum(c byte) bool {
	return numTable[c]
}

// tokenChar returns the lower-cased token byte for c, or 0 if c is not
// part of the RFC 2616 token charset (separators and SP/HT are 0, except
// SP which maps to itself, so header-field code accepts it in a name).
func tokenChar(c byte) byte {
	return tokenTable[c]
}

// hexDigit returns the numeric value of c as a hex digit, or -1.
func hexDigit(c byte) int8 {
	return hexTable[c]
}
