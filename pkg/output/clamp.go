package output

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Quantize maps a linear channel value to a byte. Values are clamped to
// [0,1] and scaled by 255.9 so that exactly 1.0 still lands on 255.
func Quantize(channel float64) uint8 {
	if math.IsNaN(channel) {
		return 0
	}
	return uint8(Clamp(channel, 0, 1) * 255.9)
}
