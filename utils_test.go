// Test utils.

package httpwire

import (
	"math/rand"

	"github.com/intuitivelabs/bytescase"
)

// randCase randomizes the case of each letter in s, the way the teacher's
// utils_test.go does, so header-name tests exercise the case-insensitive
// fast path (spec.md §8 property 5) instead of always feeding canonical
// casing.
func randCase(s string) string {
	r := make([]byte, len(s))
	for i, b := range []byte(s) {
		switch rand.Intn(3) {
		case 0:
			r[i] = bytescase.ByteToLower(b)
		case 1:
			r[i] = bytescase.ByteToUpper(b)
		default:
			r[i] = b
		}
	}
	return string(r)
}

// splitRandom splits buf into a random number of pieces (1..max),
// preserving order, for piecewise-feed / chunking-invariance tests
// (spec.md §8 property 3), grounded on the teacher's
// TestParseChunkPieces (parse_chunk_test.go).
func splitRandom(buf []byte, max int) [][]byte {
	if len(buf) == 0 {
		return nil
	}
	if max > len(buf) {
		max = len(buf)
	}
	if max < 1 {
		max = 1
	}
	n := 1 + rand.Intn(max)
	cuts := make([]int, 0, n+1)
	cuts = append(cuts, 0, len(buf))
	for i := 0; i < n-1; i++ {
		if len(buf) > 1 {
			cuts = append(cuts, 1+rand.Intn(len(buf)-1))
		}
	}
	for i := 1; i < len(cuts); i++ {
		for j := i; j > 0 && cuts[j] < cuts[j-1]; j-- {
			cuts[j], cuts[j-1] = cuts[j-1], cuts[j]
		}
	}
	pieces := make([][]byte, 0, len(cuts))
	for i := 1; i < len(cuts); i++ {
		if cuts[i] > cuts[i-1] {
			pieces = append(pieces, buf[cuts[i-1]:cuts[i]])
		}
	}
	return pieces
}

