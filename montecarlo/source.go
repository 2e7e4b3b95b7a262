package montecarlo

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies uniform pseudo-random values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a reproducible PCG-backed source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a PCG-backed source seeded from crypto/rand.
// Each call yields an independent generator; nothing is shared between
// callers.
func NewRandomSource() Source {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}
