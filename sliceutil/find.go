package sliceutil

// Contains reports whether target is present in the collection.
func Contains[T comparable](collection []T, target T) bool {
	return IndexOf(collection, target) >= 0
}

// ContainsFunc reports whether any element satisfies the predicate.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	return FindIndex(collection, predicate) >= 0
}

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[T comparable](collection []T, target T) int {
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1] // BCE hint
	for i, v := range collection {
		if v == target {
			return i
		}
	}
	return -1
}

// Find returns the first element that satisfies the predicate.
// The second result is false, with a zero value, when nothing matches.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	if i := FindIndex(collection, predicate); i >= 0 {
		return collection[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element that satisfies the
// predicate, or -1. Matching is stable: the earliest match always wins.
func FindIndex[T any](collection []T, predicate func(T) bool) int {
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1] // BCE hint

	for i, item := range collection {
		if predicate(item) {
			return i
		}
	}
	return -1
}
