package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

const (
	// quarantineCount is how many released buffers are held back from
	// free() so their addresses cannot be handed out again right away.
	quarantineCount = 256

	// quarantineBytes caps the memory held in quarantine.
	quarantineBytes = 1024 * 1024
)

// releaseStatus is the outcome of releaseCString.
type releaseStatus int

const (
	released releaseStatus = iota
	alreadyReleased
	unknownPointer
)

// allocations tracks every buffer handed to the host. Released buffers are
// wiped and parked in a FIFO quarantine before reaching free(), so a stale
// release of a recent buffer is recognized instead of hitting a new
// allocation at the same address. Once a buffer leaves quarantine its
// address may be reused and a stale release can no longer be told apart.
var allocations = struct {
	sync.Mutex
	live            map[uintptr]int // ptr -> size in bytes
	bytes           int
	quarantine      []unsafe.Pointer
	quarantined     map[uintptr]int // ptr -> size in bytes
	quarantineTotal int
}{
	live:        make(map[uintptr]int),
	quarantined: make(map[uintptr]int),
}

// allocCString copies b into memory obtained from C.malloc and records it.
// b must already end with a NUL terminator.
func allocCString(b []byte) cchar_ptr {
	p := C.malloc(C.size_t(len(b)))
	if p == nil {
		return nil
	}
	C.memcpy(p, unsafe.Pointer(&b[0]), C.size_t(len(b)))

	allocations.Lock()
	allocations.live[uintptr(p)] = len(b)
	allocations.bytes += len(b)
	allocations.Unlock()

	return (cchar_ptr)(p)
}

// releaseCString moves p from the live set into quarantine if it is live.
// Pointers that are not live are never touched.
func releaseCString(p cchar_ptr) releaseStatus {
	key := uintptr(unsafe.Pointer(p))

	allocations.Lock()
	defer allocations.Unlock()

	size, ok := allocations.live[key]
	if !ok {
		if _, parked := allocations.quarantined[key]; parked {
			return alreadyReleased
		}
		return unknownPointer
	}

	delete(allocations.live, key)
	allocations.bytes -= size
	C.memset(unsafe.Pointer(p), 0, C.size_t(size))

	allocations.quarantine = append(allocations.quarantine, unsafe.Pointer(p))
	allocations.quarantined[key] = size
	allocations.quarantineTotal += size
	evictLocked()
	return released
}

// evictLocked frees the oldest quarantined buffers until the quarantine is
// back under both caps. Callers hold allocations.Mutex.
func evictLocked() {
	for len(allocations.quarantine) > quarantineCount ||
		(allocations.quarantineTotal > quarantineBytes && len(allocations.quarantine) > 0) {
		oldest := allocations.quarantine[0]
		allocations.quarantine = allocations.quarantine[1:]
		key := uintptr(oldest)
		allocations.quarantineTotal -= allocations.quarantined[key]
		delete(allocations.quarantined, key)
		C.free(oldest)
	}
}

// outstanding returns the number of live buffers and their total size.
func outstanding() (count, bytes int) {
	allocations.Lock()
	defer allocations.Unlock()
	return len(allocations.live), allocations.bytes
}
