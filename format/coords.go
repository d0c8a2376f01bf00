package format

import (
	"fmt"
	"math"
)

type coordOptions struct {
	positive string
	negative string
}

// CoordOption customizes Latitude and Longitude.
type CoordOption func(*coordOptions)

// WithLabels sets the hemisphere labels used for non-negative and negative
// values.
func WithLabels(positive, negative string) CoordOption {
	return func(o *coordOptions) {
		o.positive = positive
		o.negative = negative
	}
}

// Latitude renders decimal degrees as degrees, minutes and seconds prefixed
// with N or S, e.g. `N 40° 26' 46.30"`.
func Latitude(deg float64, opts ...CoordOption) string {
	return toDegrees(deg, coordOptions{positive: "N", negative: "S"}, opts)
}

// Longitude renders decimal degrees as degrees, minutes and seconds prefixed
// with E or W, e.g. `W 79° 58' 56.00"`.
func Longitude(deg float64, opts ...CoordOption) string {
	return toDegrees(deg, coordOptions{positive: "E", negative: "W"}, opts)
}

func toDegrees(deg float64, o coordOptions, opts []CoordOption) string {
	for _, opt := range opts {
		opt(&o)
	}

	label := o.positive
	if deg < 0 {
		label = o.negative
	}

	// work in hundredths of a second so rounding never yields 60 seconds
	total := int64(math.Round(math.Abs(deg) * 360000))
	d := total / 360000
	m := total % 360000 / 6000
	cs := total % 6000

	return fmt.Sprintf("%s %d° %d' %d.%02d\"", label, d, m, cs/100, cs%100)
}
