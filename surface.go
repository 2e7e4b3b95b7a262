package nativesurface

import "math"

// Add returns a + b with 32-bit two's-complement wraparound, the same
// result a C int addition produces on every supported platform.
func Add(a, b int32) int32 {
	return a + b
}

// Point is a value aggregate of two coordinates and their distance from
// the origin. Field order and types match the C layout
// struct { int32_t x; int32_t y; double distance; } and must not change.
type Point struct {
	X        int32
	Y        int32
	Distance float64
}

// NewPoint builds a Point by value. The distance is computed in float64
// so large coordinates do not overflow before the square root.
func NewPoint(x, y int32) Point {
	fx, fy := float64(x), float64(y)
	return Point{
		X:        x,
		Y:        y,
		Distance: math.Sqrt(fx*fx + fy*fy),
	}
}
