// Package main exports the native surface as a C ABI, for hosts that load
// it through a foreign-function interface.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libnativesurface.so ./capi/
//
// This generates:
//   - libnativesurface.so: The shared library
//   - libnativesurface.h: Auto-generated C header file with function declarations
//
// The Point struct and callback_fn type are declared in surface.h, which
// the generated header includes.
//
// # C API Usage
//
//	#include "libnativesurface.h"
//
//	int sum = add_numbers(2, 3);
//
//	char *rev = reverse_string("hello");   // "olleh", owned by the caller
//	free_string(rev);                      // exactly once
//
//	int values[] = {1, 2, 3};
//	process_array(values, 3);              // {2, 4, 6}
//
//	Point p = create_point(3, 4);          // p.distance == 5.0
//
//	void print_int(int v) { printf("%d\n", v); }
//	process_with_callback(values, 3, print_int);
//
//	double pi = compute_pi_monte_carlo(1000000);
//
// # Ownership
//
// reverse_string is the only function that allocates. Its result comes
// from malloc and must be released with free_string, never with free()
// from a different runtime. free_string(NULL) is a no-op.
//
// Every live result is tracked. A pointer this library did not return is
// logged and ignored. Released buffers are wiped and held in a quarantine
// of the most recent releases before reaching free(), so releasing one of
// them again is also logged and ignored. After a buffer leaves quarantine
// its address may be reused, and a stale release of it would free the new
// buffer: detection is best-effort and releasing exactly once remains the
// host's job. outstanding_strings() returns the number of results not yet
// released, which hosts can use for leak checks.
//
// # Borrowed Arrays
//
// process_array and process_with_callback read or write exactly len
// elements starting at arr and keep no reference after returning. A NULL
// array with a non-zero length, or a length above limits.MaxArrayLength,
// is logged and treated as a no-op.
//
// # Callbacks
//
// The callback passed to process_with_callback is called synchronously on
// the calling thread, once per element, in index order. It is never
// stored.
//
// # Monte Carlo
//
// compute_pi_monte_carlo uses a generator local to the call. A zero or
// negative iteration count returns NaN. compute_pi_monte_carlo_seeded
// takes an explicit seed for reproducible results.
//
// # Logging
//
// Contract violations are logged through logrus at warn level. Hosts can
// change the level with surface_set_log_level (0 panic through 6 trace).
//
// # Files
//
//   - surface_c.go: Exported functions
//   - alloc_c.go: Allocation registry for returned text buffers
//   - callback_c.go: Gateway for calling host function pointers
//   - types_c.go: C type aliases and bounded views
//   - cgo_helpers.go: C value construction for tests
//   - surface.h: Shared C declarations
package main
