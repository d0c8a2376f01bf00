// Package format renders numbers and identifiers as human readable text.
package format

import (
	"fmt"
	"math"

	"utilkit/sliceutil"
)

var binaryPrefixes = [...]string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

// BytesToHuman renders a byte count with a binary prefix and one decimal,
// e.g. 1073741824 becomes "1.0GiB". Negative counts keep their sign.
func BytesToHuman[T sliceutil.Number](n T) string {
	v := float64(n)
	for _, prefix := range binaryPrefixes {
		if math.Abs(v) < 1024 {
			return fmt.Sprintf("%.1f%sB", v, prefix)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1fYiB", v)
}
