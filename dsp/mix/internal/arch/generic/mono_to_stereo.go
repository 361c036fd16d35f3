// Package generic contains the portable mono-to-stereo kernel.
package generic

import "github.com/cwbudde/algo-mix/dsp/mix/internal/arch/registry"

// MonoToStereo writes interleaved stereo: dst[2i] = src[i]*gainL,
// dst[2i+1] = src[i]*gainR. len(src) must be a multiple of 4 and
// len(dst) at least 2*len(src); it panics otherwise.
//
// The loop mirrors the vector kernels lane for lane: load four samples,
// scale them by both gains, then store the pairs zipped.
func MonoToStereo(dst, src []float32, gainL, gainR float32) {
	n := len(src)
	if n%registry.BlockWidth != 0 {
		panic("mix: source length is not a multiple of the block width")
	}
	if len(dst) < 2*n {
		panic("mix: slice length mismatch")
	}
	if n == 0 {
		return
	}

	dst = dst[:2*n]
	for i := 0; i < n; i += registry.BlockWidth {
		in := src[i : i+4 : i+4]
		out := dst[2*i : 2*i+8 : 2*i+8]

		l0, l1, l2, l3 := in[0]*gainL, in[1]*gainL, in[2]*gainL, in[3]*gainL
		r0, r1, r2, r3 := in[0]*gainR, in[1]*gainR, in[2]*gainR, in[3]*gainR

		out[0], out[1] = l0, r0
		out[2], out[3] = l1, r1
		out[4], out[5] = l2, r2
		out[6], out[7] = l3, r3
	}
}
