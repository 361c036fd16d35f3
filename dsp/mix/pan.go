package mix

import (
	"math"
)

// PanLaw selects how a pan position maps to a left/right gain pair.
type PanLaw int

const (
	// PanConstantPower uses cos/sin gains; L²+R² = 1 at every position
	// and each channel sits at -3 dB in the center.
	PanConstantPower PanLaw = iota

	// PanLinear splits amplitude linearly; L+R = 1 and the center is
	// -6 dB per channel.
	PanLinear

	// PanSquareRoot takes the square root of the linear split. It keeps
	// L²+R² = 1 like PanConstantPower but follows a different curve.
	PanSquareRoot
)

// String returns the law's name as used on the command line.
func (l PanLaw) String() string {
	switch l {
	case PanConstantPower:
		return "constant-power"
	case PanLinear:
		return "linear"
	case PanSquareRoot:
		return "square-root"
	default:
		return "unknown"
	}
}

// ParsePanLaw returns the law named by s (see PanLaw.String).
func ParsePanLaw(s string) (PanLaw, bool) {
	for _, l := range []PanLaw{PanConstantPower, PanLinear, PanSquareRoot} {
		if l.String() == s {
			return l, true
		}
	}
	return PanConstantPower, false
}

// PanGains returns the left and right gains for a pan position in
// [-1, 1]: -1 is hard left, 0 center, +1 hard right. Positions outside
// the range are clamped and NaN is treated as center. Unknown laws fall
// back to PanConstantPower.
func PanGains(pan float32, law PanLaw) (gainL, gainR float32) {
	p := float64(pan)
	switch {
	case p != p:
		p = 0
	case p < -1:
		p = -1
	case p > 1:
		p = 1
	}

	// Fraction of the signal sent right, in [0, 1].
	x := (p + 1) / 2

	switch law {
	case PanLinear:
		return float32(1 - x), float32(x)
	case PanSquareRoot:
		return float32(mathSqrt(1 - x)), float32(mathSqrt(x))
	default:
		angle := x * math.Pi / 2
		return float32(math.Cos(angle)), float32(math.Sin(angle))
	}
}

// DBToGain converts a level in dB to a linear amplitude gain. -Inf dB
// yields exactly 0.
func DBToGain(db float64) float32 {
	if math.IsInf(db, -1) {
		return 0
	}
	return float32(mathDBToLinear(db))
}
