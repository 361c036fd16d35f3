package main

import "math"

// toDB converts a linear gain to dB (20*log10). Returns -Inf for zero.
func toDB(gain float32) float64 {
	if gain <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(gain))
}
