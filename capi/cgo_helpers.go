package main

// Everything in this file exists only for the tests in this package: cgo
// cannot be used in _test.go files, so C values the tests need are built
// here. Nothing in the exported API calls into it.

/*
#include <stdlib.h>
#include "surface.h"

#define RECORD_CAP 256

static int recorded_values[RECORD_CAP];
static size_t recorded_count;

static void record_value(int v) {
    if (recorded_count < RECORD_CAP) {
        recorded_values[recorded_count] = v;
    }
    recorded_count++;
}

static callback_fn recording_callback(void) {
    recorded_count = 0;
    return record_value;
}

static size_t recorder_count(void) { return recorded_count; }
static int recorder_value(size_t i) { return recorded_values[i]; }
*/
import "C"

import "unsafe"

func newCString(s string) cchar_ptr {
	return C.CString(s)
}

func freeCString(p cchar_ptr) {
	C.free(unsafe.Pointer(p))
}

func goString(p cchar_ptr) string {
	return C.GoString(p)
}

// newCIntArray copies values into C memory. Free it with freeCIntArray.
func newCIntArray(values []int32) (cint_ptr, cusize) {
	size := len(values) * int(unsafe.Sizeof(C.int(0)))
	if size == 0 {
		size = 1
	}
	p := (cint_ptr)(C.malloc(C.size_t(size)))
	copy(unsafe.Slice((*int32)(unsafe.Pointer(p)), len(values)), values)
	return p, cusize(len(values))
}

func readCIntArray(p cint_ptr, n int) []int32 {
	out := make([]int32, n)
	copy(out, unsafe.Slice((*int32)(unsafe.Pointer(p)), n))
	return out
}

func freeCIntArray(p cint_ptr) {
	C.free(unsafe.Pointer(p))
}

// recordingCallback returns a C function pointer that appends every value
// it receives to a C-side buffer, reset on each call.
func recordingCallback() ccallback {
	return C.recording_callback()
}

func recordedValues() []int32 {
	n := int(C.recorder_count())
	out := make([]int32, 0, n)
	for i := 0; i < n && i < C.RECORD_CAP; i++ {
		out = append(out, int32(C.recorder_value(C.size_t(i))))
	}
	return out
}

func pointFields(p cpoint) (x, y int32, distance float64) {
	return int32(p.x), int32(p.y), float64(p.distance)
}

// quarantineLen reports how many released buffers are held back from free().
func quarantineLen() int {
	allocations.Lock()
	defer allocations.Unlock()
	return len(allocations.quarantine)
}
