//go:build fastmath

package mix

import (
	"github.com/meko-christian/algo-approx"
)

// ln10Over20 converts dB to the natural exponent: 10^(db/20) = e^(db*ln10/20).
const ln10Over20 = 0.115129254649702284200899572734

func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}

// mathDBToLinear converts dB to linear amplitude using the fast exponential.
func mathDBToLinear(db float64) float64 {
	return approx.FastExp(db * ln10Over20)
}
