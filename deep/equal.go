package deep

import (
	"reflect"

	"utilkit/sliceutil"
)

// Equal reports whether v1 and v2 are structurally equal. Sequences are
// compared element by element, mappings by key set and then key by key.
// Numbers compare by value across Go numeric types, so int(1) equals 1.0;
// integers compare exactly, without a detour through float64.
func Equal(v1, v2 any) bool {
	switch a := v1.(type) {
	case map[string]any:
		b, ok := v2.(map[string]any)
		return ok && equalMaps(a, b)
	case []any:
		b, ok := v2.([]any)
		return ok && equalSlices(a, b)
	}

	if isNumber(v1) || isNumber(v2) {
		if !isNumber(v1) || !isNumber(v2) {
			return false
		}
		c, err := sliceutil.CompareValues(v1, v2)
		return err == nil && c == 0
	}
	if v1 == nil || v2 == nil {
		return v1 == nil && v2 == nil
	}

	if reflect.TypeOf(v1) != reflect.TypeOf(v2) {
		return false
	}
	// a comparable static type can still hold uncomparable dynamic values,
	// e.g. [1]any{[]int{1}}
	if reflect.ValueOf(v1).Comparable() && reflect.ValueOf(v2).Comparable() {
		return v1 == v2
	}
	return reflect.DeepEqual(v1, v2)
}

func equalMaps(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	for k, av := range a {
		if !Equal(av, b[k]) {
			return false
		}
	}
	return true
}

func equalSlices(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
