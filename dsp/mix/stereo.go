package mix

import (
	"fmt"

	"github.com/cwbudde/algo-mix/dsp/mix/internal/arch/registry"
)

// BlockWidth is the number of mono samples processed together. Sample
// counts passed to this package must be multiples of it.
const BlockWidth = registry.BlockWidth

// MonoToStereo mixes all of src into dst as interleaved stereo:
// dst[2i] = src[i]*gainL, dst[2i+1] = src[i]*gainR.
//
// len(src) must be a multiple of BlockWidth and len(dst) at least
// 2*len(src). Elements of dst beyond 2*len(src) are left untouched.
func MonoToStereo(dst, src []float32, gainL, gainR float32) error {
	return MonoToStereoN(len(src), dst, src, gainL, gainR)
}

// MonoToStereoN mixes the first n samples of src into the first 2n
// elements of dst. n must be a non-negative multiple of BlockWidth.
//
// On error nothing is written.
func MonoToStereoN(n int, dst, src []float32, gainL, gainR float32) error {
	if err := checkMonoToStereo(n, len(dst), len(src)); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	monoToStereoKernel()(dst[:2*n], src[:n], gainL, gainR)
	return nil
}

func checkMonoToStereo(n, dstLen, srcLen int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: n=%d", ErrNegativeLength, n)
	case n%BlockWidth != 0:
		return fmt.Errorf("%w: n=%d", ErrBlockAlignment, n)
	case srcLen < n:
		return fmt.Errorf("%w: src has %d samples, need %d", ErrShortBuffer, srcLen, n)
	case dstLen/2 < n:
		return fmt.Errorf("%w: dst has %d values, need %d", ErrShortBuffer, dstLen, 2*n)
	}
	return nil
}
