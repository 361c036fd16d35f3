//go:build !fastmath

package mix

import "math"

func mathSqrt(x float64) float64 {
	return math.Sqrt(x)
}

// mathDBToLinear converts dB to linear amplitude (20*log10 convention).
func mathDBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
