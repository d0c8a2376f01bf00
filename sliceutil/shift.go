package sliceutil

// ShiftElement moves the element at index from to index to, shifting the
// elements in between by one. The slice is modified in place.
//
// Nothing happens when from is out of range. An out of range to is clamped
// to the nearest end of the slice.
func ShiftElement[T any](collection []T, from, to int) {
	n := len(collection)
	if from < 0 || from >= n {
		return
	}
	to = max(0, min(to, n-1))
	if from == to {
		return
	}

	v := collection[from]
	if from < to {
		copy(collection[from:to], collection[from+1:to+1])
	} else {
		copy(collection[to+1:from+1], collection[to:from])
	}
	collection[to] = v
}
