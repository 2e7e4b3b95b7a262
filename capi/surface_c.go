package main

/*
#include <string.h>
#include "surface.h"
*/
import "C"

import (
	"context"
	"math"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/nativesurface"
	"github.com/opd-ai/nativesurface/limits"
	"github.com/opd-ai/nativesurface/montecarlo"
)

// This is the main package required for building as c-shared
// It provides C-compatible wrappers for the Go nativesurface implementation

func main() {} // Required for c-shared build mode

func logger(function string) *nativesurface.LoggerHelper {
	return nativesurface.NewLogger("capi", function)
}

//export add_numbers
func add_numbers(a, b C.int) C.int {
	return cint(nativesurface.Add(int32(a), int32(b)))
}

// reverse_string returns a newly allocated, NUL-terminated copy of input
// with its bytes reversed. The caller owns the result and must pass it to
// free_string exactly once. NULL in gives NULL out.
//
//export reverse_string
func reverse_string(input *C.char) *C.char {
	if input == nil {
		return nil
	}

	n := int(C.strlen(input))
	if err := limits.ValidateTextLength(n); err != nil {
		logger("reverse_string").
			WithError(err, "validate").
			WithField("limit", limits.MaxTextLength).
			Warn("Input exceeds maximum text length")
		return nil
	}

	text := nativesurface.Reverse(byteView(input, n))
	defer text.Release()

	term, err := text.Terminated()
	if err != nil {
		logger("reverse_string").WithError(err, "terminated").Warn("Failed to read reversed text")
		return nil
	}

	out := allocCString(term)
	if out == nil {
		logger("reverse_string").WithField("size", len(term)).Warn("malloc failed")
		return nil
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logger("reverse_string").
			WithField("ptr", uintptr(unsafe.Pointer(out))).
			WithField("size", len(term)).
			Debug("Allocated text buffer")
	}
	return out
}

// free_string releases a buffer returned by reverse_string. NULL is a
// no-op. A pointer that is not a live reverse_string result is logged and
// left alone. Double releases are recognized while the buffer is still in
// the release quarantine (the most recent releases); past that, a stale
// pointer whose address was reused cannot be told apart from the new
// buffer.
//
//export free_string
func free_string(str *C.char) {
	if str == nil {
		return
	}

	switch releaseCString(str) {
	case released:
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logger("free_string").WithField("ptr", uintptr(unsafe.Pointer(str))).Debug("Released text buffer")
		}
	case alreadyReleased:
		logger("free_string").
			WithField("ptr", uintptr(unsafe.Pointer(str))).
			Warn("Ignoring release of already released buffer")
	case unknownPointer:
		logger("free_string").
			WithField("ptr", uintptr(unsafe.Pointer(str))).
			Warn("Ignoring release of unknown buffer")
	}
}

// outstanding_strings returns how many reverse_string results have not yet
// been released.
//
//export outstanding_strings
func outstanding_strings() C.size_t {
	count, _ := outstanding()
	return cusize(count)
}

// checkedIntView validates a caller-supplied (pointer, length) pair and
// builds the bounded view over it. ok is false when the pair is unusable.
func checkedIntView(function string, arr cint_ptr, length cusize) (view []int32, ok bool) {
	if length == 0 {
		return nil, true
	}
	if arr == nil {
		logger(function).WithField("length", uint64(length)).Warn("NULL array with non-zero length")
		return nil, false
	}
	if uint64(length) > math.MaxInt {
		logger(function).WithField("length", uint64(length)).Warn("Array length does not fit in int")
		return nil, false
	}
	if err := limits.ValidateArrayLength(int(length)); err != nil {
		logger(function).
			WithError(err, "validate").
			WithField("limit", limits.MaxArrayLength).
			Warn("Array length exceeds limit")
		return nil, false
	}
	return intView(arr, int(length)), true
}

// process_array doubles arr[0..len) in place.
//
//export process_array
func process_array(arr *C.int, length C.size_t) {
	view, ok := checkedIntView("process_array", arr, length)
	if !ok {
		return
	}
	nativesurface.Double(view)
}

//export create_point
func create_point(x, y C.int) C.Point {
	p := nativesurface.NewPoint(int32(x), int32(y))
	return cpoint{
		x:        cint(p.X),
		y:        cint(p.Y),
		distance: cdouble(p.Distance),
	}
}

// process_with_callback calls callback(arr[i]) for i in [0, len), in order,
// before returning. The callback is not retained.
//
//export process_with_callback
func process_with_callback(arr *C.int, length C.size_t, callback C.callback_fn) {
	if callback == nil {
		if length > 0 {
			logger("process_with_callback").Warn("NULL callback")
		}
		return
	}
	view, ok := checkedIntView("process_with_callback", arr, length)
	if !ok {
		return
	}
	nativesurface.Visit(view, callbackFunc(callback))
}

// compute_pi_monte_carlo estimates pi from iterations random samples using
// a generator local to this call. A non-positive count returns NaN.
//
//export compute_pi_monte_carlo
func compute_pi_monte_carlo(iterations C.int) C.double {
	est, err := montecarlo.Estimate(int(iterations), montecarlo.NewRandomSource())
	if err != nil {
		logger("compute_pi_monte_carlo").WithError(err, "estimate").Warn("Returning NaN")
		return cdouble(math.NaN())
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logger("compute_pi_monte_carlo").
			WithFields(logrus.Fields{"iterations": int(iterations), "estimate": est}).
			Debug("Estimate complete")
	}
	return cdouble(est)
}

// compute_pi_monte_carlo_seeded is compute_pi_monte_carlo with a fixed
// seed; equal arguments give equal results.
//
//export compute_pi_monte_carlo_seeded
func compute_pi_monte_carlo_seeded(iterations C.int, seed C.uint64_t) C.double {
	s := uint64(seed)
	est, err := montecarlo.EstimateWithConfig(context.Background(), montecarlo.Config{
		Iterations: int(iterations),
		Seed:       &s,
	})
	if err != nil {
		logger("compute_pi_monte_carlo_seeded").WithError(err, "estimate").Warn("Returning NaN")
		return cdouble(math.NaN())
	}
	return cdouble(est)
}

// surface_set_log_level sets the logrus level (0 panic .. 6 trace).
// Returns 0 on success, -1 for an unknown level.
//
//export surface_set_log_level
func surface_set_log_level(level C.int) C.int {
	if level < 0 || int(level) >= len(logrus.AllLevels) {
		return -1
	}
	logrus.SetLevel(logrus.AllLevels[level])
	return 0
}
