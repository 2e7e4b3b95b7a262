package nativesurface

// Double replaces every element of values with twice its value, in place.
// The slice bounds are the whole contract: nothing past len(values) is
// read or written, even when the backing array is larger. Pass values[:n]
// to restrict the operation to the first n elements.
func Double(values []int32) {
	for i := range values {
		values[i] *= 2
	}
}

// Visit calls fn once for each element of values in ascending index order,
// passing the element's current value. It returns only after the last
// call. A nil fn or an empty slice results in no calls. fn is not retained.
func Visit(values []int32, fn func(int32)) {
	if fn == nil {
		return
	}
	for i := range values {
		fn(values[i])
	}
}
