package nativesurface

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/opd-ai/nativesurface/limits"
)

var (
	// ErrAlreadyReleased indicates a read or release of an OwnedText that
	// has already been released
	ErrAlreadyReleased = errors.New("text buffer already released")

	// ErrTextTooLong indicates an input longer than limits.MaxTextLength
	ErrTextTooLong = errors.New("text too long")
)

// OwnedText is a text buffer produced by Reverse and owned by exactly one
// holder. Its contents can be read until Release is called; after that,
// every read returns ErrAlreadyReleased and a second Release is reported
// rather than repeated.
//
// OwnedText must not be copied by value.
type OwnedText struct {
	buf      []byte // contents followed by a single NUL terminator
	size     int    // len(buf) - 1, kept after release for diagnostics
	released atomic.Bool
}

func newOwnedText(n int) *OwnedText {
	return &OwnedText{buf: make([]byte, n+1), size: n}
}

// Reverse returns a new buffer holding the bytes of input in reverse order
// followed by a NUL terminator. A nil input is absent and yields nil
// without allocating. A non-nil empty input yields an empty, non-nil
// buffer. input is never modified.
func Reverse(input []byte) *OwnedText {
	if input == nil {
		return nil
	}

	n := len(input)
	out := newOwnedText(n)
	for i := 0; i < n; i++ {
		out.buf[i] = input[n-1-i]
	}
	out.buf[n] = 0
	return out
}

// ReverseChecked is Reverse with the boundary length limit applied.
func ReverseChecked(input []byte) (*OwnedText, error) {
	if err := limits.ValidateTextLength(len(input)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTextTooLong, err)
	}
	return Reverse(input), nil
}

// ReverseString reverses the bytes of s. A Go string is never absent, so
// the result is always non-nil.
func ReverseString(s string) *OwnedText {
	b := []byte(s)
	if b == nil {
		b = []byte{}
	}
	return Reverse(b)
}

// Len returns the number of bytes before the terminator, or 0 once released.
func (t *OwnedText) Len() int {
	if t == nil || t.released.Load() {
		return 0
	}
	return len(t.buf) - 1
}

// Bytes returns a copy of the contents without the terminator.
func (t *OwnedText) Bytes() ([]byte, error) {
	if t == nil || t.released.Load() {
		return nil, ErrAlreadyReleased
	}
	out := make([]byte, len(t.buf)-1)
	copy(out, t.buf)
	return out, nil
}

// Terminated returns a copy of the contents including the NUL terminator.
func (t *OwnedText) Terminated() ([]byte, error) {
	if t == nil || t.released.Load() {
		return nil, ErrAlreadyReleased
	}
	out := make([]byte, len(t.buf))
	copy(out, t.buf)
	return out, nil
}

// String returns the contents as a Go string.
func (t *OwnedText) String() (string, error) {
	b, err := t.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Released reports whether Release has been called.
func (t *OwnedText) Released() bool {
	return t != nil && t.released.Load()
}

// Release gives the buffer back. Releasing a nil *OwnedText is a no-op.
// The first Release wipes and drops the contents; any later Release
// returns ErrAlreadyReleased and changes nothing.
func (t *OwnedText) Release() error {
	if t == nil {
		return nil
	}
	if !t.released.CompareAndSwap(false, true) {
		NewLogger("nativesurface", "Release").
			WithFields(BufferFields("text", t.size, true)).
			Warn("Release called on already released text buffer")
		return ErrAlreadyReleased
	}
	for i := range t.buf {
		t.buf[i] = 0
	}
	t.buf = nil
	return nil
}
