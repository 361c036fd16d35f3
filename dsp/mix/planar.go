package mix

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// MonoToPlanar64 mixes float64 src into separate channel buffers:
// left[i] = src[i]*gainL, right[i] = src[i]*gainR.
//
// There is no block-alignment requirement. left and right must each hold
// at least len(src) samples and must not overlap src.
func MonoToPlanar64(left, right, src []float64, gainL, gainR float64) error {
	n := len(src)
	if len(left) < n {
		return fmt.Errorf("%w: left has %d samples, need %d", ErrShortBuffer, len(left), n)
	}
	if len(right) < n {
		return fmt.Errorf("%w: right has %d samples, need %d", ErrShortBuffer, len(right), n)
	}
	if n == 0 {
		return nil
	}

	vecmath.ScaleBlock(left[:n], src, gainL)
	vecmath.ScaleBlock(right[:n], src, gainR)
	return nil
}
