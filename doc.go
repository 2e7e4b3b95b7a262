// Package nativesurface implements a small set of independent, stateless
// functions that exercise the common categories of cross-language interop:
// primitive values, text with ownership transfer, borrowed arrays, values
// returned by aggregate, callbacks and a randomized numeric simulation.
//
// This package is the Go rendition of the surface. The ownership and
// bounds contracts are carried by Go types instead of caller discipline:
//
//   - Text returned by [Reverse] is an [OwnedText]. It can be read until
//     [OwnedText.Release] is called once; later reads and releases return
//     [ErrAlreadyReleased].
//   - Borrowed arrays are slices. [Double] and [Visit] never touch an index
//     at or beyond len(values).
//   - [Point] is returned by value and shares no storage with anything.
//   - Callbacks are plain func(int32) values invoked synchronously.
//
// The Monte Carlo estimator lives in the montecarlo subpackage, and the
// exported C ABI (built with -buildmode=c-shared) lives in capi.
//
// # Getting Started
//
//	sum := nativesurface.Add(2, 3)
//
//	text := nativesurface.ReverseString("hello")
//	defer text.Release()
//	s, _ := text.String() // "olleh"
//
//	values := []int32{1, 2, 3}
//	nativesurface.Double(values[:2]) // [2 4 3]
//
//	nativesurface.Visit(values, func(v int32) { fmt.Println(v) })
//
//	p := nativesurface.NewPoint(3, 4) // p.Distance == 5
//
// # Logging
//
// Contract violations detected at run time, such as a double release, are
// logged through logrus at warn level with function and package fields.
package nativesurface
