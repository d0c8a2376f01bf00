package sliceutil

import (
	"cmp"
	"strings"

	"utilkit/internal/argerr"
)

// ErrInvalidArgument is wrapped by the errors returned from MaxOf, MinOf and
// CompareValues.
var ErrInvalidArgument = argerr.ErrInvalidArgument

// Number is satisfied by every built-in integer and floating point type.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Max returns the largest element. The second result is false for an empty
// collection.
func Max[T cmp.Ordered](collection []T) (T, bool) {
	if len(collection) == 0 {
		var zero T
		return zero, false
	}
	return Reduce(collection[1:], func(acc, v T) T {
		if v > acc {
			return v
		}
		return acc
	}, collection[0]), true
}

// Min returns the smallest element. The second result is false for an empty
// collection.
func Min[T cmp.Ordered](collection []T) (T, bool) {
	if len(collection) == 0 {
		var zero T
		return zero, false
	}
	return Reduce(collection[1:], func(acc, v T) T {
		if v < acc {
			return v
		}
		return acc
	}, collection[0]), true
}

// Sum adds up the elements of collection.
func Sum[T Number](collection []T) T {
	return Reduce(collection, func(acc, v T) T { return acc + v }, 0)
}

// valueKind tags the two element families MaxOf and MinOf accept.
type valueKind uint8

const (
	kindUnsupported valueKind = iota
	kindNumber
	kindText
)

func (k valueKind) String() string {
	switch k {
	case kindNumber:
		return "number"
	case kindText:
		return "text"
	default:
		return "unsupported"
	}
}

// scalar is the tagged form of a dynamically typed element.
type scalar struct {
	kind valueKind
	num  number
	text string
}

// number keeps integers exact; only a float on either side compares as float64.
type number struct {
	signed   bool
	unsigned bool
	i        int64
	u        uint64
	f        float64
}

func toScalar(v any) scalar {
	switch x := v.(type) {
	case string:
		return scalar{kind: kindText, text: x}
	case int:
		return signedScalar(int64(x))
	case int8:
		return signedScalar(int64(x))
	case int16:
		return signedScalar(int64(x))
	case int32:
		return signedScalar(int64(x))
	case int64:
		return signedScalar(x)
	case uint:
		return unsignedScalar(uint64(x))
	case uint8:
		return unsignedScalar(uint64(x))
	case uint16:
		return unsignedScalar(uint64(x))
	case uint32:
		return unsignedScalar(uint64(x))
	case uint64:
		return unsignedScalar(x)
	case float32:
		return scalar{kind: kindNumber, num: number{f: float64(x)}}
	case float64:
		return scalar{kind: kindNumber, num: number{f: x}}
	default:
		return scalar{}
	}
}

func signedScalar(i int64) scalar {
	return scalar{kind: kindNumber, num: number{signed: true, i: i, f: float64(i)}}
}

func unsignedScalar(u uint64) scalar {
	return scalar{kind: kindNumber, num: number{unsigned: true, u: u, f: float64(u)}}
}

func compareNumbers(a, b number) int {
	switch {
	case a.signed && b.signed:
		return cmp.Compare(a.i, b.i)
	case a.unsigned && b.unsigned:
		return cmp.Compare(a.u, b.u)
	case a.signed && b.unsigned:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.unsigned && b.signed:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	default:
		return cmp.Compare(a.f, b.f)
	}
}

func compareScalars(a, b scalar) int {
	if a.kind == kindText {
		return strings.Compare(a.text, b.text)
	}
	return compareNumbers(a.num, b.num)
}

// CompareValues orders two dynamically typed values. Both must be numbers or
// both must be strings; anything else is an invalid argument.
func CompareValues(a, b any) (int, error) {
	sa, sb := toScalar(a), toScalar(b)
	if sa.kind == kindUnsupported {
		return 0, argerr.Errorf("sliceutil.CompareValues", "unsupported type %T", a)
	}
	if sb.kind == kindUnsupported {
		return 0, argerr.Errorf("sliceutil.CompareValues", "unsupported type %T", b)
	}
	if sa.kind != sb.kind {
		return 0, argerr.Errorf("sliceutil.CompareValues", "cannot compare %s with %s", sa.kind, sb.kind)
	}
	return compareScalars(sa, sb), nil
}

// MaxOf returns the largest element of a homogeneous sequence of numbers or
// strings. Empty, mixed or unsupported sequences are rejected.
func MaxOf(values []any) (any, error) {
	return extremeOf("sliceutil.MaxOf", values, 1)
}

// MinOf returns the smallest element of a homogeneous sequence of numbers or
// strings. Empty, mixed or unsupported sequences are rejected.
func MinOf(values []any) (any, error) {
	return extremeOf("sliceutil.MinOf", values, -1)
}

func extremeOf(op string, values []any, want int) (any, error) {
	if len(values) == 0 {
		return nil, argerr.Errorf(op, "empty sequence")
	}

	best := 0
	var bestScalar scalar
	for i, v := range values {
		s := toScalar(v)
		if s.kind == kindUnsupported {
			return nil, argerr.Errorf(op, "unsupported element type %T at index %d", v, i)
		}
		if i == 0 {
			bestScalar = s
			continue
		}
		if s.kind != bestScalar.kind {
			return nil, argerr.Errorf(op, "mixed sequence: %s at index %d, expected %s", s.kind, i, bestScalar.kind)
		}
		if compareScalars(s, bestScalar) == want {
			best, bestScalar = i, s
		}
	}
	return values[best], nil
}
