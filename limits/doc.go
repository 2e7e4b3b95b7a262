// Package limits provides centralized boundary limits and validation
// functions for the native surface. Both the Go API and the C API consult
// these limits so that a length accepted on one side is accepted on the
// other.
//
// # Limits
//
//   - MaxTextLength (64 MiB): the longest input accepted by text reversal.
//
//   - MaxArrayLength (2^28 elements): the largest borrowed integer array.
//     A C caller passing a size_t beyond this is almost certainly passing a
//     garbage length, and the surface refuses to build a view over it.
//
//   - MaxIterations (2^31-1): the largest Monte Carlo iteration count, which
//     is also the range of the C int parameter.
//
// # Validation Functions
//
//	if err := limits.ValidateArrayLength(n); err != nil {
//	    // ErrNegative or ErrTooLarge
//	}
//
// For custom limits, use ValidateLength:
//
//	err := limits.ValidateLength(n, 4096)
//
// # Error Types
//
//   - ErrNegative: the length is below zero
//   - ErrTooLarge: the length exceeds the limit
//
// Zero is always a valid length.
package limits
