package nativesurface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDouble(t *testing.T) {
	values := []int32{1, -2, 0, 40}
	Double(values)
	assert.Equal(t, []int32{2, -4, 0, 80}, values)
}

// TestDoublePrefixOnly verifies indices at or beyond n are untouched
func TestDoublePrefixOnly(t *testing.T) {
	original := []int32{1, 2, 3, 4, 5}
	for n := 0; n <= len(original); n++ {
		values := append([]int32(nil), original...)
		Double(values[:n])
		for i := range values {
			if i < n {
				assert.Equal(t, 2*original[i], values[i], "index %d with n=%d", i, n)
			} else {
				assert.Equal(t, original[i], values[i], "index %d with n=%d", i, n)
			}
		}
	}
}

func TestDoubleEmpty(t *testing.T) {
	Double(nil)
	Double([]int32{})
}

func TestVisitOrder(t *testing.T) {
	values := []int32{5, 3, 9, -1}
	var seen []int32
	Visit(values, func(v int32) { seen = append(seen, v) })
	assert.Equal(t, values, seen)
}

func TestVisitZeroLength(t *testing.T) {
	calls := 0
	Visit([]int32{}, func(int32) { calls++ })
	Visit(nil, func(int32) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestVisitNilCallback(t *testing.T) {
	assert.NotPanics(t, func() { Visit([]int32{1, 2}, nil) })
}

func TestVisitSeesDoubledValues(t *testing.T) {
	values := []int32{1, 2, 3}
	Double(values)
	var seen []int32
	Visit(values, func(v int32) { seen = append(seen, v) })
	assert.Equal(t, []int32{2, 4, 6}, seen)
}
