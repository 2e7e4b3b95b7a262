// Package limits provides centralized size limits for values crossing the
// native surface boundary. This ensures consistent validation between the
// Go API and the exported C API.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxTextLength is the longest NUL-terminated input accepted by text
	// reversal (64 MiB). Longer inputs are rejected before any allocation.
	MaxTextLength = 64 * 1024 * 1024

	// MaxArrayLength is the largest element count accepted for a borrowed
	// integer array. Lengths above it are treated as a caller bug, not data.
	MaxArrayLength = 1 << 28

	// MaxIterations bounds a single Monte Carlo run.
	MaxIterations = 1<<31 - 1
)

var (
	// ErrNegative indicates a count or length below zero
	ErrNegative = errors.New("negative length")

	// ErrTooLarge indicates a count or length above its limit
	ErrTooLarge = errors.New("length too large")
)

// ValidateLength checks a caller-supplied length against maxLen.
// Zero is valid. Returns an error with the actual and maximum values.
func ValidateLength(n, maxLen int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n > maxLen {
		return fmt.Errorf("%w: length %d exceeds limit %d", ErrTooLarge, n, maxLen)
	}
	return nil
}

// ValidateTextLength validates a text length against MaxTextLength.
func ValidateTextLength(n int) error {
	return ValidateLength(n, MaxTextLength)
}

// ValidateArrayLength validates an array element count against MaxArrayLength.
func ValidateArrayLength(n int) error {
	return ValidateLength(n, MaxArrayLength)
}
