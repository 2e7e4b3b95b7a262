package main

// #include "surface.h"
import "C"

import "unsafe"

// Value types
type cint = C.int
type cusize = C.size_t
type cdouble = C.double

// Pointers
type cchar_ptr = *C.char
type cint_ptr = *C.int

type cpoint = C.Point
type ccallback = C.callback_fn

// intView builds a bounded Go view over a caller-owned C int array. The
// view is only valid for the duration of the exported call that built it.
func intView(arr cint_ptr, length int) []int32 {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(arr)), length)
}

// byteView builds a read-only Go view over n bytes of a C string.
func byteView(s cchar_ptr, n int) []byte {
	if n == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(s)), n)
}
