// Package ringbuf implements a growable circular byte buffer used to
// stage bytes between a transport read and a consumer such as
// httpwire.Parser.Execute (spec.md §2: "the ring buffer does not
// interact with the parser directly -- they are independent primitives
// the host composes"). It has no dependencies and is not goroutine-safe.
package ringbuf

// DefaultSize is the capacity a Buffer gets when New is called with a
// non-positive size hint (spec.md §4.1 "new(size_hint)").
const DefaultSize = 4096

// Buffer is a fixed-capacity FIFO byte queue that grows on demand,
// preserving the unread byte sequence across growth even when the live
// range is wrapped around the end of the backing array (spec.md §3, §4.1
// "grow").
type Buffer struct {
	buf       []byte
	readIdx   int
	writeIdx  int
	available int
}

// New allocates a Buffer. A sizeHint <= 0 yields DefaultSize bytes of
// initial capacity.
func New(sizeHint int) *Buffer {
	if sizeHint <= 0 {
		sizeHint = DefaultSize
	}
	return &Buffer{buf: make([]byte, sizeHint)}
}

// Close releases b's resources. In Go there is nothing to free
// explicitly; it exists for symmetry with hosts that pool buffers
// (spec.md §4.1 "free(buf)").
func (b *Buffer) Close() {}

// Reset discards all buffered bytes without releasing storage (spec.md
// §4.1 "reset").
func (b *Buffer) Reset() {
	b.readIdx = 0
	b.writeIdx = 0
	b.available = 0
}

// Len reports the number of unread bytes currently buffered.
func (b *Buffer) Len() int { return b.available }

// Cap reports the current backing storage size.
func (b *Buffer) Cap() int { return len(b.buf) }

// Put appends src to the buffer, growing it first if there isn't enough
// room (spec.md §4.1 "put"). It never fails: allocation failure, per
// spec.md §4.1, propagates as a Go allocation panic rather than a
// returned error, the same as any other Go slice growth.
func (b *Buffer) Put(src []byte) {
	if len(src) == 0 {
		return
	}
	if len(b.buf)-b.available < len(src) {
		b.Grow(len(src) - (len(b.buf) - b.available))
	}
	size := len(b.buf)
	first := size - b.writeIdx
	if first > len(src) {
		first = len(src)
	}
	copy(b.buf[b.writeIdx:], src[:first])
	if first < len(src) {
		copy(b.buf, src[first:])
	}
	b.writeIdx = (b.writeIdx + len(src)) % size
	b.available += len(src)
}

// Get copies up to len(dst) unread bytes into dst, advancing the read
// position, and returns the number of bytes copied. Reading from an
// empty buffer is not an error; it returns 0 (spec.md §4.1 "get").
func (b *Buffer) Get(dst []byte) int {
	n := len(dst)
	if n > b.available {
		n = b.available
	}
	if n == 0 {
		return 0
	}
	size := len(b.buf)
	first := size - b.readIdx
	if first > n {
		first = n
	}
	copy(dst[:first], b.buf[b.readIdx:b.readIdx+first])
	if first < n {
		copy(dst[first:n], b.buf[:n-first])
	}
	b.readIdx = (b.readIdx + n) % size
	b.available -= n
	return n
}

// Peek behaves like Get but does not advance the read position, useful
// for a host that wants to hand the parser a contiguous look at the
// unread bytes without committing to having consumed them.
func (b *Buffer) Peek(dst []byte) int {
	n := len(dst)
	if n > b.available {
		n = b.available
	}
	if n == 0 {
		return 0
	}
	size := len(b.buf)
	first := size - b.readIdx
	if first > n {
		first = n
	}
	copy(dst[:first], b.buf[b.readIdx:b.readIdx+first])
	if first < n {
		copy(dst[first:n], b.buf[:n-first])
	}
	return n
}

// Discard advances the read position by n bytes (capped at Len())
// without copying them anywhere, for use after Peek.
func (b *Buffer) Discard(n int) int {
	if n > b.available {
		n = b.available
	}
	if n <= 0 {
		return 0
	}
	b.readIdx = (b.readIdx + n) % len(b.buf)
	b.available -= n
	return n
}

// Grow ensures the buffer can hold at least minExtra more bytes than are
// currently available, re-linearizing the unread range starting at index
// 0 if it was wrapped (spec.md §4.1 "grow"). The new size is at least
// double the current size and at least current+minExtra.
func (b *Buffer) Grow(minExtra int) {
	size := len(b.buf)
	newSize := size * 2
	if want := size + minExtra; newSize < want {
		newSize = want
	}
	if newSize <= size {
		return
	}
	nb := make([]byte, newSize)
	if b.available > 0 {
		first := size - b.readIdx
		if first > b.available {
			first = b.available
		}
		copy(nb, b.buf[b.readIdx:b.readIdx+first])
		if first < b.available {
			copy(nb[first:], b.buf[:b.available-first])
		}
	}
	b.buf = nb
	b.readIdx = 0
	b.writeIdx = b.available
}
