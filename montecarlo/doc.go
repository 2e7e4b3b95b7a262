// Package montecarlo estimates π by sampling points in the unit square and
// counting how many fall inside the quarter circle.
//
// The random source is always explicit. Pass NewSource(seed) for a
// reproducible run or NewRandomSource() for a fresh one; tests can pass any
// type with a Float64() float64 method. There is no package-level random
// state.
//
// A zero or negative iteration count is rejected with ErrInvalidIterations
// instead of dividing by zero.
//
//	est, err := montecarlo.Estimate(1_000_000, montecarlo.NewSource(42))
package montecarlo
