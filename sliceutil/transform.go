package sliceutil

// Filter returns the elements that satisfy the predicate, in order.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// TryMap is Map with a fallible transform. It stops at the first error.
func TryMap[T any, R any](collection []T, transform func(T) (R, error)) ([]R, error) {
	if len(collection) == 0 {
		return []R{}, nil
	}
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		var err error
		if res[i], err = transform(v); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Reduce folds the collection into a single value, left to right.
func Reduce[T any, R any](collection []T, accumulator func(R, T) R, initial R) R {
	result := initial
	for _, item := range collection {
		result = accumulator(result, item)
	}
	return result
}

// Chunk splits a slice into consecutive sub-slices of at most size elements.
// The chunks share the backing array of collection.
func Chunk[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil.Chunk: size must be greater than 0")
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	res := make([][]T, 0, (len(collection)+size-1)/size)
	for i := 0; i < len(collection); i += size {
		end := min(i+size, len(collection))
		res = append(res, collection[i:end:end])
	}
	return res
}
