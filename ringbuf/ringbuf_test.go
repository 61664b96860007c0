package ringbuf

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestRoundTrip is spec.md §8 property 1: putting S in arbitrary-sized
// chunks and getting all available bytes back yields S exactly, holding
// under grow and wrap.
func TestRoundTrip(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		n := 1 + rand.Intn(20000)
		want := make([]byte, n)
		rand.Read(want)

		b := New(1 + rand.Intn(64)) // small initial size forces growth
		var got []byte
		i := 0
		for i < len(want) {
			chunk := 1 + rand.Intn(512)
			if i+chunk > len(want) {
				chunk = len(want) - i
			}
			b.Put(want[i : i+chunk])
			i += chunk
			// occasionally drain partially, exercising wrap-around
			if rand.Intn(3) == 0 && b.Len() > 0 {
				dst := make([]byte, 1+rand.Intn(b.Len()))
				n := b.Get(dst)
				got = append(got, dst[:n]...)
			}
		}
		dst := make([]byte, b.Len())
		n = b.Get(dst)
		got = append(got, dst[:n]...)

		if !bytes.Equal(got, want) {
			t.Fatalf("trial %d: round-trip mismatch (n=%d)", trial, len(want))
		}
	}
}

// TestOrderingUnderGrow is spec.md §8 property 2: a put that triggers
// grow while the live range is wrapped still returns bytes in write
// order.
func TestOrderingUnderGrow(t *testing.T) {
	b := New(8)
	// fill, drain most of it, then fill again so writeIdx wraps past 0
	// while readIdx is still ahead of it (the wrapped case).
	b.Put([]byte("abcdefgh"))
	drained := make([]byte, 6)
	b.Get(drained) // readIdx=6, writeIdx=0, available=2 ("gh")
	b.Put([]byte("ij"))
	// writeIdx wraps to 2 now; buffer logically holds "ghij", wrapped.
	b.Put([]byte("0123456789")) // forces grow while wrapped

	want := "ghij0123456789"
	got := make([]byte, b.Len())
	n := b.Get(got)
	if string(got[:n]) != want {
		t.Fatalf("got %q, want %q", got[:n], want)
	}
}

func TestResetDoesNotFreeStorage(t *testing.T) {
	b := New(16)
	b.Put([]byte("hello"))
	cap0 := b.Cap()
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", b.Len())
	}
	if b.Cap() != cap0 {
		t.Errorf("Cap() after Reset = %d, want %d (storage should be kept)", b.Cap(), cap0)
	}
}

func TestGetOnEmptyIsNotAnError(t *testing.T) {
	b := New(16)
	dst := make([]byte, 10)
	if n := b.Get(dst); n != 0 {
		t.Errorf("Get() on empty buffer = %d, want 0", n)
	}
}

func TestDefaultSize(t *testing.T) {
	if got := New(0).Cap(); got != DefaultSize {
		t.Errorf("New(0).Cap() = %d, want %d", got, DefaultSize)
	}
	if got := New(-5).Cap(); got != DefaultSize {
		t.Errorf("New(-5).Cap() = %d, want %d", got, DefaultSize)
	}
}

func TestPeekThenDiscard(t *testing.T) {
	b := New(16)
	b.Put([]byte("hello world"))
	dst := make([]byte, 5)
	if n := b.Peek(dst); n != 5 || string(dst) != "hello" {
		t.Fatalf("Peek = %d %q, want 5 %q", n, dst, "hello")
	}
	if b.Len() != 11 {
		t.Fatalf("Len() after Peek = %d, want 11 (Peek must not consume)", b.Len())
	}
	b.Discard(6)
	rest := make([]byte, b.Len())
	b.Get(rest)
	if string(rest) != "world" {
		t.Fatalf("got %q, want %q", rest, "world")
	}
}
