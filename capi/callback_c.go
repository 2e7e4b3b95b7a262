package main

/*
#include "surface.h"

// Gateway for calling a host function pointer from Go.
static inline void invoke_callback(callback_fn cb, int value) {
    cb(value);
}
*/
import "C"

// callbackFunc adapts a host function pointer to a Go func. The pointer is
// only used while the returned func is in use and is never stored.
func callbackFunc(cb ccallback) func(int32) {
	return func(v int32) {
		C.invoke_callback(cb, C.int(v))
	}
}
